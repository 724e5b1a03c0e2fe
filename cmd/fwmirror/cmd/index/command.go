// Package index implements the "fwmirror index" command group: render
// the firmware version index and splice it into the mirror README.
package index

import (
	"github.com/spf13/cobra"

	"github.com/fwmirror/fwmirror/internal/appcontext"
)

// NewCommand creates the index command using app context.
func NewCommand(appCtx appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Render and update the firmware version index",
		Long: `Index renders the region-grouped firmware version table from the
manifest directory and splices it into the README between the index
markers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newRenderCommand(appCtx))
	cmd.AddCommand(newUpdateCommand(appCtx))

	return cmd
}
