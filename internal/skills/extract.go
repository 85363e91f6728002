// Package skills extracts job-search keywords from résumé text.
package skills

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-critiquer/internal/llm"
	"github.com/jonathan/resume-critiquer/internal/prompts"
)

const (
	// Temperature favors a stable keyword list.
	Temperature = 0.3
	// MaxTokens bounds the reply; a 15-item list fits comfortably.
	MaxTokens = 200
	// MaxSkills is the most keywords kept from a reply.
	MaxSkills = 15
	// SearchTermSkills is how many leading skills form a résumé search term.
	SearchTermSkills = 5
)

// Extract asks the model for a comma-separated keyword list and parses it.
// It never fails: any upstream error is logged and yields an empty list,
// which callers treat as "fall back to manual search".
func Extract(ctx context.Context, client llm.Client, resumeText string) []string {
	prompt := prompts.Format(
		prompts.MustGet(prompts.AnalysisFile, "skills-template"),
		map[string]string{"ResumeText": resumeText},
	)
	req := llm.NewRequest(prompts.MustGet(prompts.AnalysisFile, "skills-system"), prompt, Temperature, MaxTokens)

	reply, err := client.Complete(ctx, req)
	if err != nil {
		log.Printf("Warning: skill extraction failed: %v", err)
		return []string{}
	}
	return ParseSkillList(reply)
}

// ParseSkillList splits a comma-separated reply into at most MaxSkills trimmed,
// non-empty keywords in reply order.
func ParseSkillList(reply string) []string {
	skills := []string{}
	for _, token := range strings.Split(llm.SanitizeReply(reply), ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		skills = append(skills, token)
		if len(skills) == MaxSkills {
			break
		}
	}
	return skills
}

// SearchTerm joins the leading skills into a single OR query.
func SearchTerm(skills []string) string {
	if len(skills) > SearchTermSkills {
		skills = skills[:SearchTermSkills]
	}
	return strings.Join(skills, " OR ")
}
