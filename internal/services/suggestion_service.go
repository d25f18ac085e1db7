package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"ecodin/internal/ai"

	"github.com/google/uuid"
)

const (
	// Names of one or two characters are too short to classify; the flow is
	// skipped entirely below this length.
	minSuggestionNameLength = 3

	suggestionOutcomeApplied    = "applied"
	suggestionOutcomeSkipped    = "skipped"
	suggestionOutcomeSuperseded = "superseded"
	suggestionOutcomeFailed     = "failed"
)

// suggestionService asks the model for a category suggestion while a user
// types a transaction name. Calls are debounced per user, and responses are
// applied last-write-wins by request initiation order: each call bumps the
// user's generation counter, and a result is discarded if a newer call has
// started since. Every failure degrades to "no suggestion"; the caller never
// sees an error.
type suggestionService struct {
	aiClient ai.ClientInterface
	debounce time.Duration
	metrics  MetricsRecorderInterface
	logger   *slog.Logger

	mu          sync.Mutex
	generations map[uuid.UUID]uint64
}

// NewSuggestionService creates a new category suggestion service
func NewSuggestionService(
	aiClient ai.ClientInterface,
	debounce time.Duration,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SuggestionServiceInterface {
	return &suggestionService{
		aiClient:    aiClient,
		debounce:    debounce,
		metrics:     metrics,
		logger:      logger,
		generations: make(map[uuid.UUID]uint64),
	}
}

// Suggest returns a category for the transaction name, or ok=false when the
// name is too short, the request was superseded by a newer one, or the model
// call failed.
func (s *suggestionService) Suggest(ctx context.Context, userID uuid.UUID, transactionName string) (string, bool) {
	name := strings.TrimSpace(transactionName)
	if len([]rune(name)) < minSuggestionNameLength {
		s.metrics.RecordSuggestionRequest(suggestionOutcomeSkipped)
		return "", false
	}

	generation := s.nextGeneration(userID)

	// Debounce: wait out the idle window before spending a model call. A
	// newer keystroke bumps the generation and this request gives up.
	select {
	case <-time.After(s.debounce):
	case <-ctx.Done():
		s.metrics.RecordSuggestionRequest(suggestionOutcomeSkipped)
		return "", false
	}

	if !s.isCurrent(userID, generation) {
		s.metrics.RecordSuggestionRequest(suggestionOutcomeSuperseded)
		return "", false
	}

	category, err := s.aiClient.SuggestCategory(ctx, name)
	if err != nil {
		s.metrics.RecordSuggestionRequest(suggestionOutcomeFailed)
		s.logger.Debug("category suggestion failed",
			"user_id", userID,
			"error", err)
		return "", false
	}

	// A response that arrives after a newer request started is stale even
	// though the call itself succeeded.
	if !s.isCurrent(userID, generation) {
		s.metrics.RecordSuggestionRequest(suggestionOutcomeSuperseded)
		return "", false
	}

	s.metrics.RecordSuggestionRequest(suggestionOutcomeApplied)
	return category, true
}

func (s *suggestionService) nextGeneration(userID uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[userID]++
	return s.generations[userID]
}

func (s *suggestionService) isCurrent(userID uuid.UUID, generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[userID] == generation
}
