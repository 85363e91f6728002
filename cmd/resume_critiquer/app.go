package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/resume-critiquer/internal/ingestion"
	"github.com/jonathan/resume-critiquer/internal/llm"
	"github.com/jonathan/resume-critiquer/internal/pipeline"
	"github.com/jonathan/resume-critiquer/internal/types"
)

// newClient builds the AI client from the loaded configuration
func newClient(ctx context.Context) (llm.Client, error) {
	client, err := appConfig.NewLLMClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	return client, nil
}

// progress returns a callback printing step progress to w in verbose mode
func progress(w io.Writer) pipeline.ProgressCallback {
	if !appConfig.Verbose {
		return nil
	}
	return func(event pipeline.ProgressEvent) {
		fmt.Fprintf(w, "[%s] %s: %s\n", event.Category, event.Step, event.Message)
	}
}

// loadResume reads and extracts a résumé file into a new session
func loadResume(path string) (*types.Session, types.ResumeDocument, error) {
	doc, err := ingestion.LoadFile(path)
	if err != nil {
		return nil, doc, err
	}

	text, err := ingestion.ExtractText(doc)
	if err != nil {
		return nil, doc, err
	}
	text, err = ingestion.RequireContent(text)
	if err != nil {
		return nil, doc, err
	}

	session := &types.Session{}
	session.Set(text)
	return session, doc, nil
}
