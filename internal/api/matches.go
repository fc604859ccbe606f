package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
	"github.com/MikeSquared-Agency/ArmFinder/internal/hermes"
	"github.com/MikeSquared-Agency/ArmFinder/internal/matching"
	"github.com/MikeSquared-Agency/ArmFinder/internal/metrics"
	"github.com/MikeSquared-Agency/ArmFinder/internal/money"
	"github.com/MikeSquared-Agency/ArmFinder/internal/questionnaire"
	"github.com/MikeSquared-Agency/ArmFinder/internal/store"
)

const (
	MessageMatched   = "Found your perfect robot arm matches!"
	MessageRelaxed   = "No exact match for your requirements; showing the closest options."
	MessageNoMatches = "No matching robot arms found. Please adjust your requirements."
)

type MatchResponse struct {
	MatchID      string                `json:"match_id"`
	Requirements matching.Requirements `json:"requirements"`
	Outcome      store.MatchOutcome    `json:"outcome"`
	Relaxed      bool                  `json:"relaxed"`
	Results      []ArmView             `json:"results"`
	Message      string                `json:"message"`
}

type MatchesHandler struct {
	catalog *catalog.Catalog
	matcher *matching.Matcher
	store   store.Store
	hermes  hermes.Client
	arms    *ArmsHandler
	logger  *slog.Logger
}

func NewMatchesHandler(c *catalog.Catalog, m *matching.Matcher, s store.Store, h hermes.Client, f *money.Formatter, logger *slog.Logger) *MatchesHandler {
	if m == nil {
		m = matching.DefaultMatcher()
	}
	return &MatchesHandler{
		catalog: c,
		matcher: m,
		store:   s,
		hermes:  h,
		arms:    NewArmsHandler(c, f),
		logger:  logger,
	}
}

func decodeRequirements(r *http.Request) (matching.Requirements, error) {
	var answers questionnaire.Answers
	// An empty body takes every default.
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil && !errors.Is(err, io.EOF) {
		return matching.Requirements{}, err
	}
	req := answers.Complete()
	return req, req.Validate()
}

func (h *MatchesHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequirements(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.matcher.Match(req, h.catalog.Arms())
	outcome := store.OutcomeOf(result)

	armIDs := make([]string, 0, len(result.Arms))
	for _, a := range result.Arms {
		armIDs = append(armIDs, a.ID)
	}

	rec := &store.MatchRecord{
		Requirements: req,
		ArmIDs:       armIDs,
		Outcome:      outcome,
		ClientID:     clientKey(r),
	}
	if err := h.store.RecordMatch(r.Context(), rec); err != nil {
		h.logger.Warn("failed to record match", "error", err)
		rec.ID = uuid.New()
		rec.CreatedAt = time.Now().UTC()
	}

	if h.hermes != nil {
		evt := hermes.MatchEvent{
			MatchID:      rec.ID.String(),
			Requirements: req,
			ArmIDs:       armIDs,
			Relaxed:      result.Relaxed,
			Timestamp:    rec.CreatedAt,
		}
		if err := h.hermes.Publish(hermes.SubjectForMatch(rec.ID.String(), !result.Empty()), evt); err != nil {
			h.logger.Warn("failed to publish match event", "match_id", rec.ID, "error", err)
		}
	}

	metrics.ObserveMatch(string(outcome), len(result.Arms))
	h.logger.Info("match", "match_id", rec.ID, "outcome", outcome, "results", len(armIDs))

	writeJSON(w, http.StatusOK, h.response(rec, result.Arms))
}

func (h *MatchesHandler) Explain(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequirements(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.matcher.Explain(req, h.catalog.Arms()))
}

func (h *MatchesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match id")
		return
	}

	rec, err := h.store.GetMatch(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}

	// Arms removed from the catalog since the match was recorded are skipped.
	arms := make([]catalog.Arm, 0, len(rec.ArmIDs))
	for _, armID := range rec.ArmIDs {
		if a, ok := h.catalog.Get(armID); ok {
			arms = append(arms, a)
		}
	}
	writeJSON(w, http.StatusOK, h.response(rec, arms))
}

func (h *MatchesHandler) response(rec *store.MatchRecord, arms []catalog.Arm) MatchResponse {
	resp := MatchResponse{
		MatchID:      rec.ID.String(),
		Requirements: rec.Requirements,
		Outcome:      rec.Outcome,
		Relaxed:      rec.Outcome == store.OutcomeRelaxed,
		Results:      make([]ArmView, 0, len(arms)),
	}
	for _, a := range arms {
		resp.Results = append(resp.Results, h.arms.view(a))
	}
	switch rec.Outcome {
	case store.OutcomeStrict:
		resp.Message = MessageMatched
	case store.OutcomeRelaxed:
		resp.Message = MessageRelaxed
	default:
		resp.Message = MessageNoMatches
	}
	return resp
}
