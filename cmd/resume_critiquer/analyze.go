package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-critiquer/internal/ingestion"
	"github.com/jonathan/resume-critiquer/internal/observability"
	"github.com/jonathan/resume-critiquer/internal/pipeline"
	"github.com/jonathan/resume-critiquer/internal/types"
)

var (
	analyzeFile string
	analyzeRole string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Critique a resume and suggest job-search directions",
	Long:  "Extract the text of a PDF, DOCX or plain-text resume, then print an AI critique and five job-search recommendations, optionally tailored to a target role.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to the resume (PDF, DOCX or TXT)")
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target job role")
	_ = analyzeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	doc, err := ingestion.LoadFile(analyzeFile)
	if err != nil {
		return err
	}

	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	analyzer := &pipeline.Analyzer{Client: client, OnProgress: progress(cmd.ErrOrStderr())}
	analysis, err := analyzer.Analyze(ctx, &types.Session{}, doc, analyzeRole)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintCritique(analysis.Critique, analysis.TargetRole)
	printer.PrintRecommendations(analysis.Recommendations)
	return nil
}
