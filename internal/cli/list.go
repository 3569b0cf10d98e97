package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zimplexing/git-smart-checktout/internal/picker"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print local and remote branches without the picker",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

// branchInfo is the JSON shape of a listed branch.
type branchInfo struct {
	Name    string `json:"name"`
	Section string `json:"section"`
	Commit  string `json:"commit,omitempty"`
	Subject string `json:"subject,omitempty"`
	Current bool   `json:"current,omitempty"`
}

func runList(cmd *cobra.Command, jsonOutput bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	ws, cache := setupWorkspace(cfg, cwd)
	repo, err := ws.Current(cwd)
	if err != nil {
		return err
	}

	model, err := picker.Build(repo, cfg.Sync.PreviewLimit)
	if err != nil {
		return err
	}
	head, _ := repo.HeadBranch()

	var infos []branchInfo
	for _, item := range model.Branches() {
		infos = append(infos, branchInfo{
			Name:    item.Label,
			Section: item.Section.String(),
			Commit:  item.ShortID,
			Subject: item.Preview,
			Current: item.Section == picker.SectionLocal && item.Label == head,
		})
	}

	if cache != nil {
		if err := cache.Save(); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: could not save message cache: "+err.Error())
		}
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), infos)
	}
	printTable(cmd.OutOrStdout(), infos)
	return nil
}

func printJSON(w io.Writer, infos []branchInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}

var listTableStyle = table.Style{
	Name: "branches",
	Box: table.BoxStyle{
		PaddingLeft:  "",
		PaddingRight: "  ",
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateHeader:  false,
		SeparateRows:    false,
		SeparateColumns: false,
	},
}

func printTable(w io.Writer, infos []branchInfo) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	tw.AppendHeader(table.Row{"", "BRANCH", "TYPE", "COMMIT", "SUBJECT"})

	for _, info := range infos {
		marker := " "
		if info.Current {
			marker = "*"
		}
		tw.AppendRow(table.Row{marker, info.Name, info.Section, info.Commit, info.Subject})
	}

	tw.SetStyle(listTableStyle)

	tw.Render()
}
