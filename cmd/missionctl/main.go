package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/missionhud/missionhud/internal/config"
)

var serviceURL string
var debug bool

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "missionctl",
		Short: "Mission HUD CLI for the job application pipeline",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("MISSIONHUD_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultURL := getEnv("JOB_SERVICE_URL", "http://localhost:8000")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", defaultURL, "Base URL of the job service")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newListJobsCmd())
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newMarkAppliedCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newDeleteJobCmd())
	rootCmd.AddCommand(newGetProfileCmd())
	rootCmd.AddCommand(newSetAgentCmd())
	rootCmd.AddCommand(newProgressCmd())
	rootCmd.AddCommand(newListEmailsCmd())

	return rootCmd
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
