package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsphweid/cadence/midiexport"
	"github.com/jsphweid/cadence/musicxml"
	"github.com/jsphweid/cadence/resolve"
	"github.com/jsphweid/cadence/timeline"
)

func init() {
	rootCmd.AddCommand(exportMidiCmd)
}

var exportMidiCmd = &cobra.Command{
	Use:   "exportmidi <file> <out.mid>",
	Short: "Exports a score's timeline as a MIDI file",
	Long:  `Exports a score's timeline as a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fail(errors.New("exportmidi needs a score path and an output path"))
		}
		if err := exportMidi(args[0], args[1]); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %v\n", args[1])
	},
}

func exportMidi(scorePath, outPath string) error {
	s, err := musicxml.ParseFile(scorePath)
	if err != nil {
		return err
	}

	res := resolve.Resolve(s)
	tl, err := timeline.Build(s, res.BPM)
	if err != nil {
		return err
	}

	mf, err := midiexport.FromTimeline(tl, res.BPM)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = mf.WriteTo(f)
	return err
}
