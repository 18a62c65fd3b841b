package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(gameNotesCmd)
}

var gameNotesCmd = &cobra.Command{
	Use:   "gamenotes <file>",
	Short: "Renders a score as falling game notes",
	Long:  `Renders a score as falling game notes`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fail(errors.New("gamenotes needs exactly one file path"))
		}
		doc, err := GameDocument(args[0])
		if err != nil {
			fail(err)
		}
		printJSON(doc)
	},
}
