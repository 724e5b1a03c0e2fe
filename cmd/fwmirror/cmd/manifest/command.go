// Package manifest implements the "fwmirror manifest" command group:
// curate the per-region firmware manifests that feed the index.
package manifest

import (
	"github.com/spf13/cobra"

	"github.com/fwmirror/fwmirror/internal/appcontext"
)

// NewCommand creates the manifest command using app context.
func NewCommand(appCtx appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Manage per-region firmware manifests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newAddCommand(appCtx))
	cmd.AddCommand(newListCommand(appCtx))

	return cmd
}
