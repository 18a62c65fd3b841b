package cmd

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/cadence/constants"
	"github.com/jsphweid/cadence/tts"
)

func init() {
	rootCmd.AddCommand(sayCmd)
}

var sayCmd = &cobra.Command{
	Use:   "say <text> [voice] [format] [speed]",
	Short: "Generates speech through the TTS collaborator",
	Long:  `Generates speech through the TTS collaborator`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fail(errors.New("say needs the text to speak"))
		}

		req := tts.Request{Text: args[0]}
		if len(args) > 1 {
			req.Voice = args[1]
		}
		if len(args) > 2 {
			req.Format = args[2]
		}
		if len(args) > 3 {
			speed, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				fail(err)
			}
			req.Speed = speed
		}

		res, err := tts.Generate(constants.GetTTSEndpoint(), req)
		if err != nil {
			fail(err)
		}
		printJSON(res)
	},
}
