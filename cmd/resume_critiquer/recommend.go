package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-critiquer/internal/observability"
	"github.com/jonathan/resume-critiquer/internal/pipeline"
)

var (
	recommendFile string
	recommendRole string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest job titles, industries and keywords for a resume",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendFile, "file", "f", "", "Path to the resume (PDF, DOCX or TXT)")
	recommendCmd.Flags().StringVarP(&recommendRole, "role", "r", "", "Target job role")
	_ = recommendCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	session, _, err := loadResume(recommendFile)
	if err != nil {
		return err
	}

	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	analyzer := &pipeline.Analyzer{Client: client, OnProgress: progress(cmd.ErrOrStderr())}
	recs, err := analyzer.Recommend(ctx, session, recommendRole)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintRecommendations(recs)
	return nil
}
