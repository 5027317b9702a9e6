package cli

import (
	"errors"
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/reel/internal/errmsg"
)

var errNoSources = errors.New("no library_sources configured")

func newScanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir...]",
		Short: "Index media files and rebuild the search index",
		Long: `Index the audio and video files under the given directories, or under
library_sources from the config when none are given. Files whose
modification time did not change are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			sources := args
			if len(sources) == 0 {
				sources = cfg.LibrarySources
			}
			if len(sources) == 0 {
				return errNoSources
			}

			st, err := openStack(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			stats, err := st.library.Scan(cmd.Context(), sources)
			if err != nil {
				log.Print(errmsg.Format(errmsg.OpLibraryScan, err))
				return err
			}
			total, err := st.library.MediaCount()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"added %s, updated %s, removed %s, skipped %s (%s media indexed)\n",
				humanize.Comma(int64(stats.Added)), humanize.Comma(int64(stats.Updated)),
				humanize.Comma(int64(stats.Removed)), humanize.Comma(int64(stats.Skipped)),
				humanize.Comma(int64(total)))
			return err
		},
	}
}
