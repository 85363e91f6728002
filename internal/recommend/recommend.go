// Package recommend produces short job-search recommendations from a résumé.
package recommend

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-critiquer/internal/llm"
	"github.com/jonathan/resume-critiquer/internal/prompts"
)

const (
	Temperature = 0.7
	MaxTokens   = 400
	// MaxRecommendations is the most bullets kept from a reply.
	MaxRecommendations = 5
)

var numberedPrefixes = []string{"1.", "2.", "3.", "4.", "5."}

// BuildPrompt fills the recommendation template. The target-role line is
// included only when a role is given.
func BuildPrompt(resumeText, targetRole string) string {
	targetLine := ""
	if role := strings.TrimSpace(targetRole); role != "" {
		targetLine = prompts.Format(
			prompts.MustGet(prompts.AnalysisFile, "recommendations-target-line"),
			map[string]string{"Role": role},
		)
	}
	return prompts.Format(prompts.MustGet(prompts.AnalysisFile, "recommendations-template"), map[string]string{
		"ResumeText": resumeText,
		"TargetLine": targetLine,
	})
}

// Generate asks the model for five recommendations. Upstream failures are
// logged and yield an empty list.
func Generate(ctx context.Context, client llm.Client, resumeText, targetRole string) []string {
	req := llm.NewRequest(
		prompts.MustGet(prompts.AnalysisFile, "recommendations-system"),
		BuildPrompt(resumeText, targetRole),
		Temperature,
		MaxTokens,
	)

	reply, err := client.Complete(ctx, req)
	if err != nil {
		log.Printf("Warning: recommendation generation failed: %v", err)
		return []string{}
	}
	return ParseRecommendations(reply)
}

// ParseRecommendations keeps the bullet lines of a reply: lines starting with
// "•", "-" or a "1."-"5." numeral. At most five are kept.
func ParseRecommendations(reply string) []string {
	recs := []string{}
	for _, line := range strings.Split(llm.SanitizeReply(reply), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !isBullet(line) {
			continue
		}
		recs = append(recs, line)
		if len(recs) == MaxRecommendations {
			break
		}
	}
	return recs
}

func isBullet(line string) bool {
	if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") {
		return true
	}
	for _, prefix := range numberedPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
