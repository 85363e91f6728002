package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-critiquer/internal/observability"
	"github.com/jonathan/resume-critiquer/internal/pipeline"
	"github.com/jonathan/resume-critiquer/internal/skills"
)

var skillsFile string

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Extract job-search keywords from a resume",
	RunE:  runSkills,
}

func init() {
	skillsCmd.Flags().StringVarP(&skillsFile, "file", "f", "", "Path to the resume (PDF, DOCX or TXT)")
	_ = skillsCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	session, _, err := loadResume(skillsFile)
	if err != nil {
		return err
	}

	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	analyzer := &pipeline.Analyzer{Client: client, OnProgress: progress(cmd.ErrOrStderr())}
	extracted, err := analyzer.Skills(ctx, session)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintSkills(extracted, skills.SearchTerm(extracted))
	return nil
}
