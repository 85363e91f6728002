// Package main provides the resume-critiquer command line and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-critiquer/internal/config"
)

var (
	configPath string
	verbose    bool

	// appConfig is loaded before every command runs
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "resume-critiquer",
	Short:         "AI resume critique and multi-source job search",
	Long:          "Resume Critiquer reviews a resume with an AI model, extracts its skills, suggests job-search directions and searches job boards for matching postings.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Verbose = true
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print step progress")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
