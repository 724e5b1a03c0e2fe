package manifest

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fwmirror/fwmirror/internal/appcontext"
	"github.com/fwmirror/fwmirror/pkg/firmware"
)

// newAddCommand creates the "manifest add" command.
func newAddCommand(appCtx appcontext.Interface) *cobra.Command {
	var release firmware.Release
	var urls []string

	cmd := &cobra.Command{
		Use:   "add <region>",
		Short: "Add a firmware version to a region manifest",
		Long: `Add records one mirrored firmware version in the manifest of the
given region. Vendor mirror URLs are reconstructed from the version
metadata when none are supplied.`,
		Args: cobra.ExactArgs(1),
		Example: `  fwmirror manifest add eea --version OS2.0.206.0.VNEMIXM --date 2025-11-13 --android 15.0 --hyperos 2.0
  fwmirror manifest add global --version OS2.0.206.0.VNEMIXM --date 2025-11-13 --url https://example.com/pkg.tgz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			region := firmware.RegionCode(args[0])
			if !appCtx.Regions().Contains(region) {
				return fmt.Errorf("unknown region %q, supported: %v", region, appCtx.Regions().Codes())
			}

			release.Region = region
			release.URLs = urls

			return appCtx.Store().Add(cmd.Context(), region, release)
		},
	}

	cmd.Flags().StringVar(&release.Version, "version", "", "firmware version, e.g. OS2.0.206.0.VNEMIXM")
	cmd.Flags().StringVar(&release.Date, "date", "", "release date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&release.AndroidVersion, "android", "", "Android version, e.g. 15.0")
	cmd.Flags().StringVar(&release.HyperOSVersion, "hyperos", "", "HyperOS version, e.g. 2.0")
	cmd.Flags().StringVar(&release.MD5, "md5", "", "package checksum (calculated by the workflow when empty)")
	cmd.Flags().StringArrayVar(&urls, "url", nil, "vendor download URL (repeatable, auto-generated when omitted)")

	_ = cmd.MarkFlagRequired("version")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
