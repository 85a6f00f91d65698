// Command cardioctl analyzes cardiac recordings: beat detection, artefact
// correction and heart-rate-variability summaries.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-cardio/internal/config"
	"github.com/cwbudde/algo-cardio/internal/log"
)

var (
	cfgPath  string
	logLevel string
	pretty   bool

	cfg = config.Default()

	rootCmd = &cobra.Command{
		Use:   "cardioctl",
		Short: "Analyze cardiac signals and heart-rate variability",
		Long: `cardioctl turns ECG, PPG or RR interval recordings into
heart-rate-variability summaries across the time, frequency and nonlinear
domains.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}

				cfg = loaded
			}

			if logLevel == "" {
				logLevel = cfg.LogLevel
			}

			log.Configure(log.Config{Level: logLevel, Pretty: pretty})

			return nil
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "human-readable log output")
}
