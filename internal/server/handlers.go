package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/resume-critiquer/internal/aggregate"
	"github.com/jonathan/resume-critiquer/internal/export"
	"github.com/jonathan/resume-critiquer/internal/ingestion"
	"github.com/jonathan/resume-critiquer/internal/pipeline"
	"github.com/jonathan/resume-critiquer/internal/skills"
	"github.com/jonathan/resume-critiquer/internal/types"
)

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	SessionID string `json:"session_id"`
	*pipeline.Analysis
}

// SessionRequest represents the request body for /skills and /recommendations
type SessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Role      string `json:"role,omitempty"`
}

// SkillsResponse represents the response for /skills
type SkillsResponse struct {
	SessionID  string   `json:"session_id"`
	Skills     []string `json:"skills"`
	SearchTerm string   `json:"search_term,omitempty"`
}

// RecommendationsResponse represents the response for /recommendations
type RecommendationsResponse struct {
	SessionID       string   `json:"session_id"`
	Recommendations []string `json:"recommendations"`
}

// SearchRequest represents the request body for /search and the query
// parameters of the export endpoints
type SearchRequest struct {
	Term      string `json:"term" validate:"required_unless=ByResume true"`
	Location  string `json:"location,omitempty"`
	Count     int    `json:"count,omitempty"`
	JobType   string `json:"job_type,omitempty"`
	SessionID string `json:"session_id,omitempty" validate:"required_if=ByResume true"`
	ByResume  bool   `json:"by_resume,omitempty"`
	// Source narrows the displayed records to one provider.
	Source string `json:"source,omitempty"`
}

// SearchResponse represents the response for /search
type SearchResponse struct {
	export.Document
	Skills []string `json:"skills,omitempty"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readUpload parses the multipart résumé upload. The form carries "file",
// and optionally "role" and "session_id".
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (types.ResumeDocument, string, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		return types.ResumeDocument{}, "", "", &ErrValidation{Field: "file", Message: "invalid multipart upload: " + err.Error()}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return types.ResumeDocument{}, "", "", &ErrValidation{Field: "file", Message: "a resume file is required"}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return types.ResumeDocument{}, "", "", fmt.Errorf("failed to read upload: %w", err)
	}

	doc := types.ResumeDocument{
		Filename:  header.Filename,
		MediaType: ingestion.DetectMediaType(header.Filename, header.Header.Get("Content-Type")),
		Data:      data,
	}
	return doc, strings.TrimSpace(r.FormValue("role")), r.FormValue("session_id"), nil
}

// handleAnalyze extracts an uploaded résumé and returns the critique and
// recommendations along with the session the text is stored in
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	doc, role, sessionID, err := s.readUpload(w, r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	id, session, err := s.sessions.GetOrCreate(sessionID)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	analysis, err := s.analyzer.Analyze(r.Context(), session, doc, role)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{SessionID: id, Analysis: analysis})
}

// handleAnalyzeStream runs the analysis and streams progress via SSE
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	doc, role, sessionID, err := s.readUpload(w, r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	id, session, err := s.sessions.GetOrCreate(sessionID)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	analyzer := *s.analyzer
	analyzer.OnProgress = func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent("step", event); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	}

	analysis, err := analyzer.Analyze(r.Context(), session, doc, role)
	if err != nil {
		log.Printf("Streaming analysis failed: %v", err)
		sse.WriteError(err)
		return
	}

	sse.WriteEvent("complete", AnalyzeResponse{SessionID: id, Analysis: analysis}) //nolint:errcheck
}

// decodeSessionRequest reads and validates a session request body and
// resolves its session
func (s *Server) decodeSessionRequest(r *http.Request) (SessionRequest, *types.Session, error) {
	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, nil, &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	if err := s.validate.Struct(req); err != nil {
		return req, nil, err
	}
	session, err := s.sessions.Get(req.SessionID)
	return req, session, err
}

// handleSkills extracts skills from the session's résumé
func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	req, session, err := s.decodeSessionRequest(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	extracted, err := s.analyzer.Skills(r.Context(), session)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, SkillsResponse{
		SessionID:  req.SessionID,
		Skills:     extracted,
		SearchTerm: skills.SearchTerm(extracted),
	})
}

// handleRecommendations generates recommendations for the session's résumé
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	req, session, err := s.decodeSessionRequest(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	recs, err := s.analyzer.Recommend(r.Context(), session, req.Role)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, RecommendationsResponse{SessionID: req.SessionID, Recommendations: recs})
}

// handleSearch runs a manual or résumé-based search from a JSON body
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.failure(w, r, &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()})
		return
	}

	set, extracted, err := s.runSearch(r, req)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, SearchResponse{Document: export.NewDocument(&set), Skills: extracted})
}

// handleSearchCSV runs a search from query parameters and returns a CSV download
func (s *Server) handleSearchCSV(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, export.FormatCSV)
}

// handleSearchExport is handleSearchCSV for any export format (?format=csv|xlsx|json)
func (s *Server) handleSearchExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.failure(w, r, &ErrValidation{Field: "format", Message: err.Error()})
		return
	}
	s.serveExport(w, r, format)
}

func (s *Server) serveExport(w http.ResponseWriter, r *http.Request, format export.Format) {
	req, err := searchRequestFromQuery(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	set, _, err := s.runSearch(r, req)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	// Render fully before writing headers so a failure can still be reported
	var buf bytes.Buffer
	if err := export.Write(&buf, format, &set); err != nil {
		s.failure(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="job_search_results.%s"`, format))
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing export: %v", err)
	}
}

func searchRequestFromQuery(r *http.Request) (SearchRequest, error) {
	q := r.URL.Query()
	req := SearchRequest{
		Term:      q.Get("term"),
		Location:  q.Get("location"),
		JobType:   q.Get("job_type"),
		SessionID: q.Get("session_id"),
		Source:    q.Get("source"),
	}
	if v := q.Get("count"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil {
			return req, &ErrValidation{Field: "count", Message: "must be an integer"}
		}
		req.Count = count
	}
	if v := q.Get("by_resume"); v != "" {
		byResume, err := strconv.ParseBool(v)
		if err != nil {
			return req, &ErrValidation{Field: "by_resume", Message: "must be a boolean"}
		}
		req.ByResume = byResume
	}
	return req, nil
}

// runSearch validates req, fills it from the server defaults and dispatches
// to a manual or résumé-based search
func (s *Server) runSearch(r *http.Request, req SearchRequest) (types.JobResultSet, []string, error) {
	if err := s.validate.Struct(req); err != nil {
		return types.JobResultSet{}, nil, err
	}

	query := s.defaults
	query.Term = req.Term
	if req.Location != "" {
		query.Location = req.Location
	}
	if req.Count != 0 {
		query.Count = req.Count
	}
	if req.JobType != "" {
		jobType, err := types.ParseJobType(req.JobType)
		if err != nil {
			return types.JobResultSet{}, nil, &ErrValidation{Field: "job_type", Message: err.Error()}
		}
		query.JobType = jobType
	}

	var (
		set       types.JobResultSet
		extracted []string
		err       error
	)
	if req.ByResume {
		session, sessErr := s.sessions.Get(req.SessionID)
		if sessErr != nil {
			return types.JobResultSet{}, nil, sessErr
		}
		set, extracted, err = s.searcher.SearchByResume(r.Context(), session, query)
	} else {
		set, err = s.searcher.Search(r.Context(), query)
	}
	if err != nil || req.Source == "" {
		return set, extracted, err
	}
	return aggregate.Filter(set, aggregate.BySource(req.Source)), extracted, nil
}
