package cmd

import (
	"fmt"

	"github.com/itsmostafa/tocview/internal/render"
	"github.com/itsmostafa/tocview/internal/source"
	"github.com/itsmostafa/tocview/internal/toc"
	"github.com/spf13/cobra"
)

var showActive string
var showExpandAll bool

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the table of contents tree",
	Long:  `Build the tree from a JSON dataset and print it. Nodes on the path to the active page are expanded.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := dataPathArg(args)
		if err != nil {
			return err
		}
		log := newLogger()

		data, err := source.LoadFile(path)
		if err != nil {
			return err
		}
		tree, err := toc.BuildTreeChecked(*data)
		if err != nil {
			return fmt.Errorf("failed to build tree: %w", err)
		}
		log.Debug("built tree", "path", path, "roots", len(tree), "nodes", toc.Len(tree))

		view := toc.NewView(showActive)
		if showExpandAll {
			view.ExpandAll(tree)
		}

		out := cmd.OutOrStdout()
		render.Tree(out, tree, view, "")
		render.Stats(out, tree)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showActive, "active", "", "Id of the active page")
	showCmd.Flags().BoolVarP(&showExpandAll, "expand-all", "a", false, "Expand every node")
	rootCmd.AddCommand(showCmd)
}
