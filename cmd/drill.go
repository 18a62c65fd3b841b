package cmd

import (
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsphweid/cadence/drill"
	"github.com/jsphweid/cadence/model"
)

func init() {
	drillCmd.AddCommand(drillStartCmd)
	drillCmd.AddCommand(drillEvaluateCmd)
	rootCmd.AddCommand(drillCmd)
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Interval drill session",
	Long:  `Interval drill session`,
}

var drillStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts a new interval drill",
	Long:  `Starts a new interval drill`,
	Run: func(cmd *cobra.Command, args []string) {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		session := drill.NewSession(rng)
		printJSON(session.Start(0, 0))
	},
}

var drillEvaluateCmd = &cobra.Command{
	Use:   "evaluate <json>",
	Short: "Evaluates a drill answer",
	Long:  `Evaluates a drill answer`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fail(errors.New("evaluate needs the answer payload as one JSON argument"))
		}
		var answer model.DrillAnswer
		if err := json.Unmarshal([]byte(args[0]), &answer); err != nil {
			fail(err)
		}
		printJSON(drill.Evaluate(answer))
	},
}
