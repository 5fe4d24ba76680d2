package graph

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"docgraph/backend/internal/model"
)

// SessionStandard bundles the full classification standard: every classifier
// with its data rows plus every enricher. The two reads are independent and
// run concurrently.
func (r *Repository) SessionStandard(ctx context.Context) (*model.SessionStandardExport, error) {
	var (
		classifiers []model.ClassifierExport
		enrichers   []model.Enricher
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		classifiers, err = r.allClassifiers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		enrichers, err = r.AllEnrichers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to export session standard: %w", err)
	}

	return &model.SessionStandardExport{
		Classifiers: classifiers,
		Enrichers:   enrichers,
	}, nil
}

func (r *Repository) allClassifiers(ctx context.Context) ([]model.ClassifierExport, error) {
	query := `
		MATCH (c:Classifier)
		OPTIONAL MATCH (c)-[:HAS_DATA]->(d:ClassifierData)
		WITH c, d ORDER BY c.id, d.code
		RETURN c, collect(d) as data
		ORDER BY c.id
	`

	records, err := r.store.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classifiers: %w", err)
	}

	classifiers := make([]model.ClassifierExport, 0, len(records))
	for _, record := range records {
		classifiers = append(classifiers, *classifierExportFromRecord(record))
	}
	return classifiers, nil
}
