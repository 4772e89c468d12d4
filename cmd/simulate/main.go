package main

import (
	"os"

	"tractor/internal/sim"
)

func main() {
	opts := sim.OptionsFromEnv()
	opts.Logger = sim.NewJSONLogger()

	runner := sim.NewRunner(opts)
	results, err := runner.Run()
	if err != nil {
		opts.Logger.WithError(err).Error("simulation aborted")
		os.Exit(1)
	}

	attackerWins := 0
	for _, r := range results {
		if r.AttackersWon {
			attackerWins++
		}
	}
	opts.Logger.WithFields(map[string]interface{}{
		"event":        "simulation_complete",
		"appVersion":   opts.AppVersion,
		"rounds":       len(results),
		"attackerWins": attackerWins,
	}).Info("simulation_complete")
}
