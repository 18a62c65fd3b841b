package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parses a score into the full raw document",
	Long:  `Parses a score into the full raw document`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fail(errors.New("parse needs exactly one file path"))
		}
		doc, err := ParseDocument(args[0])
		if err != nil {
			fail(err)
		}
		printJSON(doc)
	},
}
