package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

const (
	defaultSuggestionLimit = 5
	maxSuggestionLimit     = 15
)

type DestinationServiceInterface interface {
	UpsertDestination(ctx context.Context, request request_models.UpsertDestinationRequest) error
	Suggest(ctx context.Context, query string, limit int) ([]response_models.DestinationSuggestionResponse, error)
}

// DestinationService backs free-text destination lookup with vector search.
// It feeds the trip-creation UI only; route eligibility stays on its fixed
// reference tables.
type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	embedder        utils.NarrativeClientInterface
	logger          *zap.Logger
}

func NewDestinationService(
	destinationRepo repositories.DestinationRepository,
	embedder utils.NarrativeClientInterface,
	logger *zap.Logger,
) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		embedder:        embedder,
		logger:          logger,
	}
}

func (d *DestinationService) UpsertDestination(ctx context.Context, request request_models.UpsertDestinationRequest) error {
	if strings.TrimSpace(request.Name) == "" {
		return utils.ErrInvalidInput
	}

	embedding, err := d.embedder.GetEmbedding(ctx, embeddingText(request))
	if err != nil {
		d.logger.Warn("destination embedding failed",
			zap.String("destination_id", request.DestinationID),
			zap.Error(err))
		return utils.ErrUnexpectedBehaviorOfAI
	}

	destination := &db_models.DestinationEmbedding{
		DestinationID: request.DestinationID,
		Name:          strings.TrimSpace(request.Name),
		Country:       strings.TrimSpace(request.Country),
		Region:        strings.TrimSpace(request.Region),
		Aliases:       request.Aliases,
		Summary:       strings.TrimSpace(request.Summary),
		Embedding:     embedding,
	}

	if err := d.destinationRepo.Upsert(ctx, destination); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (d *DestinationService) Suggest(ctx context.Context, query string, limit int) ([]response_models.DestinationSuggestionResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	if limit < 1 {
		limit = defaultSuggestionLimit
	}
	if limit > maxSuggestionLimit {
		limit = maxSuggestionLimit
	}

	vector, err := d.embedder.GetEmbedding(ctx, query)
	if err != nil {
		d.logger.Warn("query embedding failed", zap.Error(err))
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	matches, err := d.destinationRepo.SearchByVector(ctx, vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	suggestions := make([]response_models.DestinationSuggestionResponse, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, response_models.NewDestinationSuggestionResponse(match))
	}
	return suggestions, nil
}

func embeddingText(request request_models.UpsertDestinationRequest) string {
	parts := []string{request.Name, request.Country, request.Region}
	parts = append(parts, request.Aliases...)
	if request.Summary != "" {
		parts = append(parts, request.Summary)
	}

	var nonEmpty []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(part))
		}
	}
	return strings.Join(nonEmpty, ". ")
}
