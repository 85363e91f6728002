// Package critique produces the structured résumé review shown after an upload.
package critique

import (
	"context"
	"errors"
	"strings"

	"github.com/jonathan/resume-critiquer/internal/llm"
	"github.com/jonathan/resume-critiquer/internal/prompts"
)

// Temperature favors varied, natural-sounding feedback over determinism.
const Temperature = 0.7

// Sections are the headings the prompt asks the model to use, in order.
var Sections = []string{
	"Overall Impression",
	"Strengths",
	"Areas for Improvement",
	"Specific Recommendations",
	"Action Items",
	"Final Score",
}

// BuildPrompt fills the critique template with the résumé text and target role.
// An empty role is replaced by generic wording.
func BuildPrompt(resumeText, targetRole string) string {
	role := strings.TrimSpace(targetRole)
	data := map[string]string{
		"ResumeText": resumeText,
		"Role":       role,
		"RoleTitle":  role,
		"RoleFocus":  role,
	}
	if role == "" {
		data["Role"] = prompts.MustGet(prompts.AnalysisFile, "critique-role-fallback")
		data["RoleTitle"] = prompts.MustGet(prompts.AnalysisFile, "critique-role-title-fallback")
		data["RoleFocus"] = prompts.MustGet(prompts.AnalysisFile, "critique-role-focus-fallback")
	}
	return prompts.Format(prompts.MustGet(prompts.AnalysisFile, "critique-template"), data)
}

// Generate returns the model's critique of resumeText verbatim.
// Any failure, including an empty reply, is an *llm.UpstreamError and is not retried.
func Generate(ctx context.Context, client llm.Client, resumeText, targetRole string) (string, error) {
	req := llm.NewRequest(
		prompts.MustGet(prompts.AnalysisFile, "critique-system"),
		BuildPrompt(resumeText, targetRole),
		Temperature,
		0,
	)

	text, err := client.Complete(ctx, req)
	if err != nil {
		var upstream *llm.UpstreamError
		if errors.As(err, &upstream) {
			return "", err
		}
		return "", &llm.UpstreamError{Message: "critique request failed", Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &llm.UpstreamError{Message: "empty critique from " + client.GetModel()}
	}
	return text, nil
}
