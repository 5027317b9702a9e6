package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/reel/internal/app"
	"github.com/llehouerou/reel/internal/icons"
)

func runTUI(_ *cobra.Command, opts *options) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	st, err := openStack(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	icons.Init(cfg.Icons)

	m := app.New(app.Options{
		Library:      st.library,
		Suggestions:  st.provider,
		State:        st.state,
		ReorderQuiet: cfg.ReorderQuiet(),
	})
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
