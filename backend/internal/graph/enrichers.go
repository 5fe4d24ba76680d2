package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"docgraph/backend/internal/model"
	"docgraph/backend/pkg/apperr"
)

// CreateEnricher creates an enricher node; duplicates are rejected by the
// uniqueness constraint on Enricher.name.
func (r *Repository) CreateEnricher(ctx context.Context, enricher *model.Enricher) error {
	query := `
		CREATE (e:Enricher {name: $name, searchTerm: $searchTerm, body: $body,
		                    active: $active, value: $value})
		RETURN e.name as name
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"name":       enricher.Name,
		"searchTerm": enricher.SearchTerm,
		"body":       enricher.Body,
		"active":     enricher.Active,
		"value":      optionalStringParam(enricher.Value),
	})
	if err != nil {
		if apperr.IsDuplicateKey(err) {
			return apperr.DuplicateKey("Enricher", enricher.Name, err)
		}
		return fmt.Errorf("failed to create enricher: %w", err)
	}

	r.logger.Info("Enricher created", zap.String("name", enricher.Name))
	return nil
}

// GetEnricher returns an enricher by name
func (r *Repository) GetEnricher(ctx context.Context, name string) (*model.Enricher, error) {
	query := `
		MATCH (e:Enricher {name: $name})
		RETURN e
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enricher: %w", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("Enricher", name)
	}

	return enricherFromRecord(records[0]), nil
}

// ListEnrichers returns enrichers ordered by name
func (r *Repository) ListEnrichers(ctx context.Context, limit, offset int) ([]model.Enricher, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	query := `
		MATCH (e:Enricher)
		RETURN e
		ORDER BY e.name
		SKIP $offset LIMIT $limit
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list enrichers: %w", err)
	}

	enrichers := make([]model.Enricher, 0, len(records))
	for _, record := range records {
		enrichers = append(enrichers, *enricherFromRecord(record))
	}
	return enrichers, nil
}

// AllEnrichers returns every enricher, used by the session-standard export
func (r *Repository) AllEnrichers(ctx context.Context) ([]model.Enricher, error) {
	query := `
		MATCH (e:Enricher)
		RETURN e
		ORDER BY e.name
	`

	records, err := r.store.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrichers: %w", err)
	}

	enrichers := make([]model.Enricher, 0, len(records))
	for _, record := range records {
		enrichers = append(enrichers, *enricherFromRecord(record))
	}
	return enrichers, nil
}

func enricherFromRecord(record *neo4j.Record) *model.Enricher {
	props := nodeProps(record, "e")
	return &model.Enricher{
		Name:       getString(props, "name"),
		SearchTerm: getString(props, "searchTerm"),
		Body:       getString(props, "body"),
		Active:     getBool(props, "active"),
		Value:      getOptionalString(props, "value"),
	}
}
