package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sheetMusicCmd)
}

var sheetMusicCmd = &cobra.Command{
	Use:   "sheetmusic <file>",
	Short: "Renders a score as sheet music data",
	Long:  `Renders a score as sheet music data`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fail(errors.New("sheetmusic needs exactly one file path"))
		}
		doc, err := NotationDocument(args[0])
		if err != nil {
			fail(err)
		}
		printJSON(doc)
	},
}
