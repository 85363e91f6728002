package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-critiquer/internal/sample"
	"github.com/jonathan/resume-critiquer/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server exposing resume analysis, skill extraction, recommendations and job search as JSON endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, else 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := appConfig.Port
	if servePort != 0 {
		port = servePort
	}

	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	srv := server.New(server.Config{
		Port:     port,
		Client:   client,
		Sources:  appConfig.Sources(),
		Sample:   sample.New(),
		Defaults: appConfig.Query(""),
	})
	return srv.Start()
}
