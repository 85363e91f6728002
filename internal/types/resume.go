package types

import "sync"

// MediaType is the declared content type of an uploaded résumé.
type MediaType string

// Supported résumé media types.
const (
	MediaTypePDF       MediaType = "application/pdf"
	MediaTypePlainText MediaType = "text/plain"
	MediaTypeDOCX      MediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ResumeDocument is an uploaded résumé: raw bytes plus declared media type.
type ResumeDocument struct {
	Filename  string
	MediaType MediaType
	Data      []byte
}

// Session holds the most recently analyzed résumé text so later actions can
// reuse it without a re-upload. It is owned by the caller and passed explicitly.
// The slot is overwritten on each successful extraction and never cleared.
type Session struct {
	mu   sync.RWMutex
	text string
}

// Set stores the résumé text, replacing any previous value.
func (s *Session) Set(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

// Text returns the stored résumé text, or "" if none.
func (s *Session) Text() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

// HasResume reports whether a résumé has been stored.
func (s *Session) HasResume() bool {
	return s.Text() != ""
}
