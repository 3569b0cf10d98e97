package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zimplexing/git-smart-checktout/internal/app"
	"github.com/zimplexing/git-smart-checktout/internal/config"
	"github.com/zimplexing/git-smart-checktout/internal/debug"
	"github.com/zimplexing/git-smart-checktout/internal/exec"
	"github.com/zimplexing/git-smart-checktout/internal/git"
)

// newStatusCmd opens the same picker entry point; without a terminal it
// degrades to the plain branch table.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show branch status (same picker, table when not a terminal)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd)
		},
	}
}

// loadConfig honors the --config flag, falling back to the default path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// setupWorkspace builds the repository workspace from the configured roots
// plus the working directory.
func setupWorkspace(cfg *config.Config, cwd string) (*git.Workspace, *git.MessageCache) {
	var cache *git.MessageCache
	if cfg.Sync.CacheMessages {
		cache = git.OpenMessageCache(cwd)
	}

	roots := append([]string{cwd}, cfg.General.Roots...)
	return git.Discover(exec.NewDefaultRunner(), cache, roots...), cache
}

func runPicker(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	for _, warning := range cfg.Validate() {
		fmt.Fprintln(os.Stderr, "Warning: "+warning)
	}

	if dbg, _ := cmd.Flags().GetBool("debug"); dbg || cfg.Debug.LogFile != "" {
		if err := debug.Enable(cfg.Debug.LogFile); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: debug log disabled: "+err.Error())
		}
		defer debug.Close()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	// Without a terminal there is nothing interactive to run; print the
	// branch table instead so pipes still work.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return runList(cmd, false)
	}

	ws, cache := setupWorkspace(cfg, cwd)

	model := app.New(cfg, ws, cwd)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if cache != nil {
		if err := cache.Save(); err != nil {
			debug.Error("cache save", err)
		}
	}

	if m, ok := finalModel.(app.Model); ok && m.ShouldQuit() {
		return nil
	}
	return nil
}
