package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Score tooling for the Cadence piano trainer",
	Long:  `Turns MusicXML scores into game note timelines and sheet music render data.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
