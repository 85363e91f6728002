package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-critiquer/internal/critique"
	"github.com/jonathan/resume-critiquer/internal/ingestion"
	"github.com/jonathan/resume-critiquer/internal/llm"
	"github.com/jonathan/resume-critiquer/internal/recommend"
	"github.com/jonathan/resume-critiquer/internal/skills"
	"github.com/jonathan/resume-critiquer/internal/types"
)

// Analysis is the outcome of analyzing one résumé upload.
type Analysis struct {
	ResumeText      string   `json:"-"`
	TargetRole      string   `json:"target_role,omitempty"`
	Critique        string   `json:"critique"`
	Recommendations []string `json:"recommendations"`
}

// Analyzer runs the AI steps over résumé text.
type Analyzer struct {
	Client     llm.Client
	OnProgress ProgressCallback
}

// Analyze extracts the document text, stores it in session, and runs the
// critique and recommendations concurrently. Empty documents fail with
// *ingestion.ContentError before any AI call. A critique failure aborts the
// analysis; recommendations degrade to an empty list.
func (a *Analyzer) Analyze(ctx context.Context, session *types.Session, doc types.ResumeDocument, targetRole string) (*Analysis, error) {
	emit(a.OnProgress, CategoryAnalysis, "extract", fmt.Sprintf("extracting text from %s", doc.Filename))
	text, err := ingestion.ExtractText(doc)
	if err != nil {
		return nil, err
	}
	text, err = ingestion.RequireContent(text)
	if err != nil {
		return nil, err
	}
	if session != nil {
		session.Set(text)
	}

	return a.AnalyzeText(ctx, text, targetRole)
}

// AnalyzeText runs the critique and recommendations over already-extracted text.
func (a *Analyzer) AnalyzeText(ctx context.Context, text, targetRole string) (*Analysis, error) {
	text, err := ingestion.RequireContent(text)
	if err != nil {
		return nil, err
	}

	result := &Analysis{ResumeText: text, TargetRole: targetRole}
	client := a.client()

	g, gCtx := errgroup.WithContext(ctx)

	// Each goroutine writes a distinct field of result
	g.Go(func() error {
		emit(a.OnProgress, CategoryAnalysis, "critique", "requesting critique")
		review, err := critique.Generate(gCtx, client, result.ResumeText, targetRole)
		if err != nil {
			return err
		}
		result.Critique = review
		return nil
	})

	g.Go(func() error {
		emit(a.OnProgress, CategoryAnalysis, "recommendations", "requesting recommendations")
		result.Recommendations = recommend.Generate(gCtx, client, result.ResumeText, targetRole)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// Skills extracts keywords from the session's résumé.
func (a *Analyzer) Skills(ctx context.Context, session *types.Session) ([]string, error) {
	text, err := resumeText(session)
	if err != nil {
		return nil, err
	}
	emit(a.OnProgress, CategoryAnalysis, "skills", "extracting skills")
	return skills.Extract(ctx, a.client(), text), nil
}

// Recommend generates recommendations for the session's résumé.
func (a *Analyzer) Recommend(ctx context.Context, session *types.Session, targetRole string) ([]string, error) {
	text, err := resumeText(session)
	if err != nil {
		return nil, err
	}
	emit(a.OnProgress, CategoryAnalysis, "recommendations", "requesting recommendations")
	return recommend.Generate(ctx, a.client(), text, targetRole), nil
}

// resumeText returns the session's stored résumé. A session with nothing
// stored is a ContentError, like an empty upload.
func resumeText(session *types.Session) (string, error) {
	if !session.HasResume() {
		return "", &ingestion.ContentError{Message: "no résumé has been analyzed in this session"}
	}
	return ingestion.RequireContent(session.Text())
}

func (a *Analyzer) client() llm.Client {
	if a.Client == nil {
		return &llm.UnavailableClient{Reason: "no AI client configured"}
	}
	return a.Client
}
