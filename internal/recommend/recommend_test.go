package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-critiquer/internal/llm/llmtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendations(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected []string
	}{
		{
			name:  "numbered list with preamble",
			reply: "Here are my recommendations:\n\n1. Search for Backend Engineer roles\n2. Target fintech companies\n3. Highlight AWS",
			expected: []string{
				"1. Search for Backend Engineer roles",
				"2. Target fintech companies",
				"3. Highlight AWS",
			},
		},
		{
			name:     "bullet markers",
			reply:    "• Use keywords like Django\n- Apply to startups\nNo marker here",
			expected: []string{"• Use keywords like Django", "- Apply to startups"},
		},
		{
			name:     "inner hyphen is not a marker",
			reply:    "Consider full-time roles\nplain line",
			expected: []string{},
		},
		{
			name:     "numerals beyond five ignored",
			reply:    "6. Sixth idea\n10. Tenth idea",
			expected: []string{},
		},
		{
			name:     "empty reply",
			reply:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRecommendations(tt.reply))
		})
	}
}

func TestParseRecommendations_TruncatesToFive(t *testing.T) {
	reply := "• a\n• b\n• c\n• d\n• e\n• f\n• g"

	recs := ParseRecommendations(reply)
	assert.Equal(t, []string{"• a", "• b", "• c", "• d", "• e"}, recs)
}

func TestParseRecommendations_IgnoresHyphenatedPreamble(t *testing.T) {
	reply := "Here are 5 tailored recommendations for a full-stack developer:\n\n" +
		"1. Search for Backend Engineer roles\n" +
		"2. Target fintech companies\n" +
		"3. Highlight AWS certifications\n" +
		"4. Use Kubernetes keyword\n" +
		"5. Apply to remote-first startups"

	recs := ParseRecommendations(reply)
	require.Len(t, recs, 5)
	assert.Equal(t, "1. Search for Backend Engineer roles", recs[0])
	assert.Equal(t, "5. Apply to remote-first startups", recs[4])
}

func TestBuildPrompt(t *testing.T) {
	withRole := BuildPrompt("resume body", "Product Manager")
	assert.Contains(t, withRole, "The user is targeting: Product Manager")
	assert.Contains(t, withRole, "resume body")
	assert.Contains(t, withRole, "exactly 5 bullet points")

	withoutRole := BuildPrompt("resume body", "")
	assert.NotContains(t, withoutRole, "The user is targeting")
	assert.NotContains(t, withoutRole, "{{.")
}

func TestGenerate(t *testing.T) {
	stub := &llmtest.Stub{Reply: "1. One\n2. Two"}

	recs := Generate(context.Background(), stub, "resume", "")
	assert.Equal(t, []string{"1. One", "2. Two"}, recs)

	req := stub.Requests()[0]
	assert.InDelta(t, 0.7, req.Temperature, 0.0001)
	assert.Equal(t, 400, req.MaxTokens)
	assert.Equal(t, "You are a career counselor providing job search advice.", req.Messages[0].Content)
}

func TestGenerate_FailureReturnsEmpty(t *testing.T) {
	recs := Generate(context.Background(), &llmtest.Stub{Err: errors.New("boom")}, "resume", "")

	require.NotNil(t, recs)
	assert.Empty(t, recs)
}
