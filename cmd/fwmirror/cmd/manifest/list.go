package manifest

import (
	"github.com/spf13/cobra"

	"github.com/fwmirror/fwmirror/internal/appcontext"
	"github.com/fwmirror/fwmirror/internal/cmd/output"
	"github.com/fwmirror/fwmirror/pkg/firmware"
)

// newListCommand creates the "manifest list" command.
func newListCommand(appCtx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "list [region]",
		Short: "List mirrored firmware versions",
		Args:  cobra.MaximumNArgs(1),
		Example: `  fwmirror manifest list
  fwmirror manifest list eea
  fwmirror manifest list -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions := appCtx.Regions()
			if len(args) == 1 {
				region, ok := regions.Lookup(firmware.RegionCode(args[0]))
				if !ok {
					return cmd.Help()
				}
				regions = firmware.Regions{region}
			}

			records, err := appCtx.Store().Releases(regions)
			if err != nil {
				return err
			}

			format := output.DetectFormat(appCtx.OutputFormat())
			formatter := output.NewFormatter(format)

			if format == output.FormatTable {
				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					region, _ := regions.Lookup(rec.Region)
					rows = append(rows, []string{
						region.DisplayName(),
						rec.Version,
						rec.Date,
						rec.AndroidVersion,
						rec.HyperOSVersion,
					})
				}
				return formatter.Format(cmd.OutOrStdout(), output.Data{
					Headers: []string{"Region", "Version", "Date", "Android", "HyperOS"},
					Rows:    rows,
				})
			}

			return formatter.Format(cmd.OutOrStdout(), records)
		},
	}
}
