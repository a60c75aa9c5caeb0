package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/crew"
	"github.com/jonathan/resume-builder/internal/types"
)

// batchConcurrency caps how many batch items generate at once so a single
// request cannot exhaust the LLM quota.
const batchConcurrency = 4

// analyzeRequest represents the request body for POST /analyze.
type analyzeRequest struct {
	UserInfo string `json:"user_info"`
}

// handleGenerate runs one resume generation.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := crew.Run(r.Context(), crew.RunOptions{
		UserInfo:   req.UserInfo,
		TargetRole: req.TargetRole,
		Client:     s.client,
		Sink:       s.sink,
	})

	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{
		RequestID:       uuid.NewString(),
		Resume:          result.Resume,
		Source:          result.Source,
		FallbackReason:  result.FallbackReason,
		MissingSections: result.MissingSections,
	})
}

// handleGenerateBatch runs up to MaxBatchSize generations concurrently and
// returns results in request order.
func (s *Server) handleGenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	results := make([]types.GenerateResponse, len(req.Items))

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(batchConcurrency)
	for i, item := range req.Items {
		i, item := i, item
		g.Go(func() error {
			result := crew.Run(ctx, crew.RunOptions{
				UserInfo:   item.UserInfo,
				TargetRole: item.TargetRole,
				Client:     s.client,
				Sink:       s.sink,
			})
			results[i] = types.GenerateResponse{
				RequestID:       uuid.NewString(),
				Resume:          result.Resume,
				Source:          result.Source,
				FallbackReason:  result.FallbackReason,
				MissingSections: result.MissingSections,
			}
			return nil
		})
	}
	_ = g.Wait() // generation never fails

	s.jsonResponse(w, http.StatusOK, types.BatchGenerateResponse{
		RequestID: uuid.NewString(),
		Results:   results,
	})
}

// handleAnalyze runs only the heuristic extractors over the provided text,
// without any LLM calls. Useful for inspecting what the fallback path sees.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.UserInfo == "" {
		s.errorResponse(w, http.StatusBadRequest, "user_info is required")
		return
	}
	if len(req.UserInfo) > types.MaxUserInfoLength {
		s.errorResponse(w, http.StatusBadRequest, "user_info exceeds maximum length")
		return
	}

	analysis := crew.ExtractAnalysis(r.Context(), req.UserInfo, s.sink)
	s.jsonResponse(w, http.StatusOK, analysis)
}
