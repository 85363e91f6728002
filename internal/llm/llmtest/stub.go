// Package llmtest provides an in-memory llm.Client for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/jonathan/resume-critiquer/internal/llm"
)

// Stub returns a canned reply or error and records every request.
type Stub struct {
	Reply string
	Err   error
	// Replies, when set, answers by the system instruction of the request.
	Replies map[string]string

	mu       sync.Mutex
	requests []llm.Request
}

// Complete records req and returns the configured reply.
func (s *Stub) Complete(_ context.Context, req llm.Request) (string, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	if len(req.Messages) > 0 {
		if reply, ok := s.Replies[req.Messages[0].Content]; ok {
			return reply, nil
		}
	}
	return s.Reply, nil
}

// GetModel returns a fixed test model name.
func (s *Stub) GetModel() string {
	return "stub-model"
}

// Close is a no-op.
func (s *Stub) Close() error {
	return nil
}

// Requests returns a copy of the recorded requests.
func (s *Stub) Requests() []llm.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.Request(nil), s.requests...)
}

// LastPrompt returns the user message of the most recent request.
func (s *Stub) LastPrompt() string {
	reqs := s.Requests()
	if len(reqs) == 0 {
		return ""
	}
	msgs := reqs[len(reqs)-1].Messages
	return msgs[len(msgs)-1].Content
}
