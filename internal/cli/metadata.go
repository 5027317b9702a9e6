package cli

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/metadata"
)

func newMetadataCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Manage the movie and show metadata catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "import <file.toml>",
		Short: "Import metadata entries from a TOML file",
		Long: `Import [[entry]] tables from a TOML file. Entries are matched to media
by media_id or media_path; existing entries with the same id are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			entries, err := metadata.LoadFile(args[0])
			if err != nil {
				return errors.New(errmsg.FormatWith(errmsg.OpMetadataImport, args[0], err))
			}

			st, err := openStack(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.metadata.Import(entries); err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %s entries\n", humanize.Comma(int64(len(entries))))
			return err
		},
	})
	return cmd
}
