package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edsim/edsim/sim"
	"github.com/edsim/edsim/sim/policy"
)

var (
	// CLI flags for the simulation instance
	configPath  string  // Optional YAML instance file
	seed        int64   // Seed for the partitioned RNG
	horizon     float64 // Total simulated time (minutes)
	numDoctors  int     // Number of doctors in the pool
	numBeds     int     // Number of beds in the pool
	arrivalRate float64 // Patient arrivals per hour
	optInterval float64 // Minutes between optimization cycles
	detInterval float64 // Minutes between deterioration checks
	detChance   float64 // Per-check escalation probability
	detFactor   float64 // Overdue multiple of the max recommended wait
	metInterval float64 // Minutes between metric samples
	logLevel    string  // Log verbosity level
	outputPath  string  // Where to write the result JSON (empty = stdout summary only)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "edsim",
	Short: "Discrete-event simulator for emergency department resource assignment",
}

// runCmd executes one simulation replication using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one emergency department simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.DefaultConfig()
		if configPath != "" {
			cfg, err = sim.LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("Unable to read instance config: %v", err)
			}
		}
		applyFlagOverrides(cmd, &cfg)

		s, err := sim.NewSimulation(cfg, policy.NewGreedyPolicy())
		if err != nil {
			logrus.Fatalf("Invalid simulation setup: %v", err)
		}

		logrus.Infof("Starting simulation: %d doctors, %d beds, %.1f arrivals/h, horizon=%.0fmin",
			cfg.NumDoctors, cfg.NumBeds, cfg.ArrivalRate, cfg.Horizon)

		result := s.Run()
		s.Metrics.Print(result.SimEndTime)

		if outputPath != "" {
			if err := result.WriteJSON(outputPath); err != nil {
				logrus.Fatalf("Unable to write result: %v", err)
			}
			logrus.Infof("Result written to %s", outputPath)
		}
	},
}

// applyFlagOverrides lets explicitly-set flags win over the instance file.
func applyFlagOverrides(cmd *cobra.Command, cfg *sim.Config) {
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("horizon") {
		cfg.Horizon = horizon
	}
	if cmd.Flags().Changed("doctors") {
		cfg.NumDoctors = numDoctors
	}
	if cmd.Flags().Changed("beds") {
		cfg.NumBeds = numBeds
	}
	if cmd.Flags().Changed("arrival-rate") {
		cfg.ArrivalRate = arrivalRate
	}
	if cmd.Flags().Changed("optimization-interval") {
		cfg.OptimizationInterval = optInterval
	}
	if cmd.Flags().Changed("deterioration-interval") {
		cfg.DeteriorationInterval = detInterval
	}
	if cmd.Flags().Changed("deterioration-chance") {
		cfg.DeteriorationChance = detChance
	}
	if cmd.Flags().Changed("deterioration-wait-factor") {
		cfg.DeteriorationWaitFactor = detFactor
	}
	if cmd.Flags().Changed("metrics-interval") {
		cfg.MetricsInterval = metInterval
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML instance file (flags override its values)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random patient generation")
	runCmd.Flags().Float64Var(&horizon, "horizon", 480, "Total simulation horizon (minutes)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().IntVar(&numDoctors, "doctors", 3, "Number of doctors")
	runCmd.Flags().IntVar(&numBeds, "beds", 10, "Number of beds")
	runCmd.Flags().Float64Var(&arrivalRate, "arrival-rate", 6, "Patient arrivals per hour")

	runCmd.Flags().Float64Var(&optInterval, "optimization-interval", 30, "Minutes between optimization cycles")
	runCmd.Flags().Float64Var(&detInterval, "deterioration-interval", 15, "Minutes between deterioration checks")
	runCmd.Flags().Float64Var(&detChance, "deterioration-chance", 0.2, "Per-check escalation probability")
	runCmd.Flags().Float64Var(&detFactor, "deterioration-wait-factor", 1.5, "Overdue multiple of the max recommended wait")
	runCmd.Flags().Float64Var(&metInterval, "metrics-interval", 10, "Minutes between metric samples")

	runCmd.Flags().StringVar(&outputPath, "output", "", "Write the result record as JSON to this path")

	rootCmd.AddCommand(runCmd)
}
