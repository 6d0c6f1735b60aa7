package server

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/server/ratelimit"
	"github.com/jonathan/resume-screener/internal/types"
)

// ScreenResponse is the payload returned by the screen endpoint.
type ScreenResponse struct {
	RunID   uuid.UUID      `json:"run_id"`
	JobID   uuid.UUID      `json:"job_id"`
	Results []ScreenResult `json:"results"`
}

// ScreenResult pairs a scoring result with its human-readable explanation.
type ScreenResult struct {
	*types.ScoringResult
	Explanation string `json:"explanation"`
}

// ResultsResponse is the payload for fetching stored run results.
type ResultsResponse struct {
	Run     *db.ScreeningRun `json:"run"`
	Results []StoredResult   `json:"results"`
}

// StoredResult pairs a persisted screening result with its explanation.
type StoredResult struct {
	*db.ScreeningResult
	Explanation string `json:"explanation"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleStats returns row counts for the main tables
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// handleUploadResume processes and stores a single resume
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if err := schemas.ValidateResumeUpload(string(body)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req types.UploadResumeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resume, err := s.storeResume(r, &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	respondJSON(w, http.StatusCreated, resume)
}

// handleUploadResumesBatch processes and stores multiple resumes in one call
func (s *Server) handleUploadResumesBatch(w http.ResponseWriter, r *http.Request) {
	var req types.UploadResumesBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resumes := make([]*db.Resume, 0, len(req.Resumes))
	for i := range req.Resumes {
		resume, err := s.storeResume(r, &req.Resumes[i])
		if err != nil {
			http.Error(w, err.Error(), HTTPStatus(err))
			return
		}
		resumes = append(resumes, resume)
	}

	respondJSON(w, http.StatusCreated, resumes)
}

// storeResume builds a candidate profile from raw resume text and persists it.
func (s *Server) storeResume(r *http.Request, req *types.UploadResumeRequest) (*db.Resume, error) {
	profile, err := s.screener.BuildCandidateProfile(r.Context(), req.CandidateName, req.Content)
	if err != nil {
		return nil, err
	}

	contact := ingestion.ExtractContactInfo(req.Content)
	if req.Email != "" {
		contact.Email = req.Email
	}
	if req.Phone != "" {
		contact.Phone = req.Phone
	}

	resume := &db.Resume{
		ID:              profile.ID,
		CandidateName:   profile.Name,
		Content:         req.Content,
		Skills:          profile.Skills,
		ExperienceYears: profile.ExperienceYears,
		Contact:         &contact,
		Embedding:       profile.Embedding,
	}
	if err := s.db.SaveResume(r.Context(), resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// handleListResumes returns all stored resumes
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.db.ListResumes(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if resumes == nil {
		resumes = []*db.Resume{}
	}
	respondJSON(w, http.StatusOK, resumes)
}

// handleGetResume returns a stored resume by ID
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid resume ID", http.StatusBadRequest)
		return
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if resume == nil {
		notFound := &ErrNotFound{Resource: "resume", ID: id}
		http.Error(w, notFound.Error(), HTTPStatus(notFound))
		return
	}

	respondJSON(w, http.StatusOK, resume)
}

// handleDeleteResume removes a stored resume
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid resume ID", http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteResume(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUploadJob processes and stores a job description
func (s *Server) handleUploadJob(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if err := schemas.ValidateJobUpload(string(body)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req types.UploadJobRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	target, err := s.screener.BuildTargetProfile(r.Context(), req.Title, req.Description, req.RequiredExperienceYears)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	job := &db.Job{
		ID:                      target.ID,
		Title:                   target.Title,
		Content:                 req.Description,
		RequiredSkills:          target.RequiredSkills,
		PreferredSkills:         target.PreferredSkills,
		RequiredExperienceYears: target.RequiredExperienceYears,
		Embedding:               target.Embedding,
	}
	if err := s.db.SaveJob(r.Context(), job); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, job)
}

// handleListJobs returns all stored jobs
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.db.ListJobs(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if jobs == nil {
		jobs = []*db.Job{}
	}
	respondJSON(w, http.StatusOK, jobs)
}

// handleGetJob returns a stored job by ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid job ID", http.StatusBadRequest)
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if job == nil {
		notFound := &ErrNotFound{Resource: "job", ID: id}
		http.Error(w, notFound.Error(), HTTPStatus(notFound))
		return
	}

	respondJSON(w, http.StatusOK, job)
}

// handleScreen runs the screening pipeline for a stored job
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid job ID", http.StatusBadRequest)
		return
	}

	// An empty body means screen everything with defaults.
	var req types.ScreenRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if len(body) > 0 {
		if err := schemas.ValidateScreenRequest(string(body)); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if job == nil {
		notFound := &ErrNotFound{Resource: "job", ID: jobID}
		http.Error(w, notFound.Error(), HTTPStatus(notFound))
		return
	}

	candidates, err := s.loadCandidates(r, req.ResumeIDs)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	target := &types.TargetProfile{
		ID:                      job.ID,
		Title:                   job.Title,
		RequiredSkills:          job.RequiredSkills,
		PreferredSkills:         job.PreferredSkills,
		RequiredExperienceYears: job.RequiredExperienceYears,
		Embedding:               job.Embedding,
	}

	runID, err := s.db.CreateScreeningRun(r.Context(), job.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	results, err := s.screener.Screen(r.Context(), candidates, target)
	if err != nil {
		_ = s.db.CompleteScreeningRun(r.Context(), runID, "failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	threshold := s.threshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	if threshold > 0 {
		results = ranking.FilterByThreshold(results, threshold)
	}
	if req.TopK > 0 {
		results = ranking.TopK(results, req.TopK)
	}

	if err := s.db.SaveScreeningResults(r.Context(), runID, results); err != nil {
		_ = s.db.CompleteScreeningRun(r.Context(), runID, "failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.db.CompleteScreeningRun(r.Context(), runID, "completed"); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := ScreenResponse{
		RunID:   runID,
		JobID:   job.ID,
		Results: make([]ScreenResult, 0, len(results)),
	}
	for _, result := range results {
		response.Results = append(response.Results, ScreenResult{
			ScoringResult: result,
			Explanation:   ranking.Explain(result),
		})
	}

	respondJSON(w, http.StatusOK, response)
}

// loadCandidates fetches stored resumes and converts them to candidate
// profiles. An empty ID list means all resumes.
func (s *Server) loadCandidates(r *http.Request, resumeIDs []string) ([]*types.CandidateProfile, error) {
	var resumes []*db.Resume

	if len(resumeIDs) == 0 {
		all, err := s.db.ListResumes(r.Context())
		if err != nil {
			return nil, err
		}
		resumes = all
	} else {
		for _, idStr := range resumeIDs {
			id, err := uuid.Parse(idStr)
			if err != nil {
				return nil, &ErrValidation{Field: "resume_ids", Message: "invalid UUID: " + idStr}
			}
			resume, err := s.db.GetResume(r.Context(), id)
			if err != nil {
				return nil, err
			}
			if resume == nil {
				return nil, &ErrNotFound{Resource: "resume", ID: id}
			}
			resumes = append(resumes, resume)
		}
	}

	candidates := make([]*types.CandidateProfile, 0, len(resumes))
	for _, resume := range resumes {
		candidates = append(candidates, &types.CandidateProfile{
			ID:              resume.ID,
			Name:            resume.CandidateName,
			Skills:          resume.Skills,
			ExperienceYears: resume.ExperienceYears,
			Embedding:       resume.Embedding,
		})
	}
	return candidates, nil
}

// handleGetResults returns the stored results of a screening run
func (s *Server) handleGetResults(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid run ID", http.StatusBadRequest)
		return
	}

	run, err := s.db.GetScreeningRun(r.Context(), runID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if run == nil {
		notFound := &ErrNotFound{Resource: "screening run", ID: runID}
		http.Error(w, notFound.Error(), HTTPStatus(notFound))
		return
	}

	results, err := s.db.GetScreeningResults(r.Context(), runID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	stored := make([]StoredResult, 0, len(results))
	for _, result := range results {
		stored = append(stored, StoredResult{
			ScreeningResult: result,
			Explanation: ranking.Explain(&types.ScoringResult{
				CandidateID:             result.ResumeID,
				CandidateName:           result.CandidateName,
				SkillMatchScore:         result.SkillMatchScore,
				SemanticSimilarityScore: result.SemanticSimilarityScore,
				ExperienceScore:         result.ExperienceScore,
				OverallScore:            result.OverallScore,
				MatchedSkills:           result.MatchedSkills,
				Rank:                    result.Rank,
			}),
		})
	}

	respondJSON(w, http.StatusOK, ResultsResponse{Run: run, Results: stored})
}

// clientIP extracts the client address for rate limiting, preferring
// X-Forwarded-For when the server sits behind a proxy.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}
