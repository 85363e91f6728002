// Package llm - util.go provides shared helpers for treating completions as untrusted text.
package llm

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-critiquer/internal/fetch"
)

// MaxReplyLength caps how much of a completion the parsers will look at.
const MaxReplyLength = 8000

// SanitizeReply prepares a completion for line-oriented parsing: it removes
// markdown code fences, strips HTML markup and caps the length.
func SanitizeReply(text string) string {
	text = StripCodeFence(text)
	if len(text) > MaxReplyLength {
		cut := MaxReplyLength
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return fetch.StripMarkup(text)
}

// StripCodeFence removes a markdown code block wrapper.
// LLMs often wrap output in ``` blocks even when instructed not to.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Skip a language identifier on the first line
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := text[:idx]
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, ",") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
