package main

import (
	"maps"
	"os"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func getCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Shows which optimization tools are installed",
		Long: `Checks every configured tool (built-in and custom) for a resolvable
executable on this host and prints the result as a table.

This is a diagnostic: a missing tool does not make optimg fail, its
format chain simply falls through to the next installed tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			reg := buildRegistry(cfg)

			installed := reg.CheckOptimizers()

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Tool", "Installed"})
			for _, name := range slices.Sorted(maps.Keys(installed)) {
				status := "no"
				if installed[name] {
					status = "yes"
				}
				t.AppendRow(table.Row{name, status})
			}
			t.SetStyle(table.StyleLight)
			t.Render()

			return nil
		},
	}

	return cmd
}
