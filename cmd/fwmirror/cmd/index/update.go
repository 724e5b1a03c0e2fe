package index

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fwmirror/fwmirror/internal/appcontext"
	"github.com/fwmirror/fwmirror/pkg/errors"
	"github.com/fwmirror/fwmirror/pkg/logging"
)

const readmePermissions = 0o644

// newUpdateCommand creates the "index update" command.
func newUpdateCommand(appCtx appcontext.Interface) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the index block in the README",
		Long: `Update regenerates the firmware version index from the manifest
directory and replaces the block between the index markers in the
README. The README is left untouched when either marker is missing or
when the index is already up to date.`,
		Example: `  fwmirror index update
  fwmirror index update --dry-run
  fwmirror index update --readme docs/README.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithOperation(logging.WithLogger(cmd.Context(), appCtx.Logger()), "index.update")
			logger := logging.Ctx(ctx)
			path := appCtx.ReadmePath()

			doc, err := os.ReadFile(path)
			if err != nil {
				return errors.WrapIO("read", path, err)
			}

			records, err := appCtx.Store().Releases(appCtx.Regions())
			if err != nil {
				return err
			}

			updated, err := appCtx.Renderer().UpdateReadme(string(doc), records, appCtx.Regions())
			if err != nil {
				return err
			}

			if dryRun {
				cmd.Print(updated)
				return nil
			}

			if updated == string(doc) {
				logger.Info().Str("readme", path).Msg("Index already up to date")
				return nil
			}

			// Replace the README atomically so a failed write never
			// leaves a half-spliced document behind.
			tmp := path + ".tmp"
			if err := os.WriteFile(tmp, []byte(updated), readmePermissions); err != nil {
				return errors.WrapIO("write", tmp, err)
			}
			if err := os.Rename(tmp, path); err != nil {
				return errors.WrapIO("write", path, err)
			}

			logger.Info().
				Str("readme", path).
				Int("records", len(records)).
				Msg("Updated firmware index")

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the updated README instead of writing it")

	return cmd
}
