package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file> <outdir>",
	Short: "Re-renders the score whenever it changes",
	Long:  `Re-renders the score whenever it changes`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fail(errors.New("watch needs a score path and an output dir"))
		}
		watch(args[0], args[1])
	},
}

func watch(scorePath, outDir string) {
	if err := os.MkdirAll(outDir, 0777); err != nil {
		fail(err)
	}
	if err := renderAll(scorePath, outDir); err != nil {
		fail(err)
	}

	// notation editors save in bursts; coalesce before re-rendering
	debounced := debounce.New(500 * time.Millisecond)
	var lastMod time.Time
	if stat, err := os.Stat(scorePath); err == nil {
		lastMod = stat.ModTime()
	}

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		stat, err := os.Stat(scorePath)
		if err != nil {
			continue
		}
		if stat.ModTime().After(lastMod) {
			lastMod = stat.ModTime()
			debounced(func() {
				if err := renderAll(scorePath, outDir); err != nil {
					fmt.Printf("Skipping render because: %v\n", err)
				}
			})
		}
	}
}

func renderAll(scorePath, outDir string) error {
	gameDoc, err := GameDocument(scorePath)
	if err != nil {
		return err
	}
	sheetDoc, err := NotationDocument(scorePath)
	if err != nil {
		return err
	}

	if err := writeJSON(filepath.Join(outDir, "game_notes.json"), gameDoc); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(outDir, "sheet_music.json"), sheetDoc); err != nil {
		return err
	}
	fmt.Printf("Rendered %v into %v\n", scorePath, outDir)
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}
