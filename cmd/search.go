package cmd

import (
	"fmt"
	"strings"

	"github.com/itsmostafa/tocview/internal/render"
	"github.com/itsmostafa/tocview/internal/source"
	"github.com/itsmostafa/tocview/internal/toc"
	"github.com/spf13/cobra"
)

var searchActive string

var searchCmd = &cobra.Command{
	Use:   "search <file> <query>",
	Short: "Filter the table of contents by title",
	Long: `Keep only pages whose title contains the query, ignoring case and diacritics,
together with the pages leading to them. Matching branches are shown expanded.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		data, err := source.LoadFile(args[0])
		if err != nil {
			return err
		}
		tree, err := toc.BuildTreeChecked(*data)
		if err != nil {
			return fmt.Errorf("failed to build tree: %w", err)
		}

		query := strings.TrimSpace(args[1])
		result := toc.FilterTree(tree, query)
		log.Debug("filtered tree", "query", query, "count", result.Count, "nodes", toc.Len(result.Tree))

		view := toc.NewView(searchActive)
		view.ExpandAll(result.Tree)

		out := cmd.OutOrStdout()
		render.Summary(out, query, result)
		render.Tree(out, result.Tree, view, query)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchActive, "active", "", "Id of the active page")
	rootCmd.AddCommand(searchCmd)
}
