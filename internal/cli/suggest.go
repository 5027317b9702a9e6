package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/reel/internal/suggest"
)

func newSuggestCmd(opts *options) *cobra.Command {
	var uri string
	var thumbnails bool

	cmd := &cobra.Command{
		Use:   "suggest <query...>",
		Short: "Print search suggestions for a query",
		Example: `  reel suggest heat
  reel suggest "massive attack" --thumbnails`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			st, err := openStack(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			cur, err := st.provider.Query(cmd.Context(), uri, []string{strings.Join(args, " ")})
			if err != nil {
				return err
			}
			return printRows(cmd, cur, thumbnails)
		},
	}
	cmd.Flags().StringVar(&uri, "uri", suggest.SearchURI, "provider uri")
	cmd.Flags().BoolVar(&thumbnails, "thumbnails", false, "include the thumbnail column")
	return cmd
}

func printRows(cmd *cobra.Command, cur *suggest.Cursor, thumbnails bool) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	header := "KEY\tTITLE\tSUBTITLE\tYEAR\tDURATION"
	if thumbnails {
		header += "\tTHUMBNAIL"
	}
	fmt.Fprintln(w, header)

	for _, r := range cur.Rows {
		line := strings.Join([]string{r.Key, r.Title, r.Subtitle, year(r.Year), duration(r.Duration)}, "\t")
		if thumbnails {
			line += "\t" + r.Thumbnail
		}
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	n := cur.Count()
	noun := "results"
	if n == 1 {
		noun = "result"
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", humanize.Comma(int64(n)), noun)
	return err
}

func year(y int) string {
	if y <= 0 {
		return "-"
	}
	return strconv.Itoa(y)
}

func duration(ms int64) string {
	if ms < 0 {
		return "-"
	}
	s := ms / 1000
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s%3600/60, s%60)
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
