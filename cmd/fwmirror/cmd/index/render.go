package index

import (
	"github.com/spf13/cobra"

	"github.com/fwmirror/fwmirror/internal/appcontext"
)

// newRenderCommand creates the "index render" command.
func newRenderCommand(appCtx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the firmware index to stdout",
		Example: `  fwmirror index render
  fwmirror index render --manifests firmware_updates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := appCtx.Store().Releases(appCtx.Regions())
			if err != nil {
				return err
			}

			rendered, err := appCtx.Renderer().Render(records, appCtx.Regions())
			if err != nil {
				return err
			}

			cmd.Print(rendered)
			return nil
		},
	}
}
