package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/itsmostafa/tocview/internal/source"
	"github.com/spf13/cobra"
)

var importURL string

var importCmd = &cobra.Command{
	Use:   "import <markdown>",
	Short: "Convert markdown headings into a dataset",
	Long:  `Read a markdown document and write a JSON dataset with one page and one anchor per heading.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read markdown: %w", err)
		}

		name := importURL
		if name == "" {
			name = filepath.Base(args[0])
		}
		data := source.FromMarkdown(src, name)
		newLogger().Debug("imported markdown", "path", args[0], "pages", len(data.Entities.Pages))

		return source.Encode(cmd.OutOrStdout(), data)
	},
}

func init() {
	importCmd.Flags().StringVar(&importURL, "url", "", "URL used for pages and anchors (default: file name)")
	rootCmd.AddCommand(importCmd)
}
