package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"go.uber.org/zap"

	"docgraph/backend/internal/model"
	"docgraph/backend/pkg/apperr"
)

// CreateClassifier creates a classifier node; duplicates are rejected by the
// uniqueness constraint on Classifier.id.
func (r *Repository) CreateClassifier(ctx context.Context, classifier *model.Classifier) error {
	query := `
		CREATE (c:Classifier {id: $id, name: $name, isHierarchy: $isHierarchy, parentId: $parentId,
		                      prompt: $prompt, description: $description})
		RETURN c.id as id
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":          classifier.ID,
		"name":        classifier.Name,
		"isHierarchy": classifier.IsHierarchy,
		"parentId":    optionalStringParam(classifier.ParentID),
		"prompt":      classifier.Prompt,
		"description": classifier.Description,
	})
	if err != nil {
		if apperr.IsDuplicateKey(err) {
			return apperr.DuplicateKey("Classifier", classifier.ID, err)
		}
		return fmt.Errorf("failed to create classifier: %w", err)
	}

	r.logger.Info("Classifier created", zap.String("classifier_id", classifier.ID))
	return nil
}

// GetClassifier returns a classifier with its data rows attached
func (r *Repository) GetClassifier(ctx context.Context, id string) (*model.ClassifierExport, error) {
	query := `
		MATCH (c:Classifier {id: $id})
		OPTIONAL MATCH (c)-[:HAS_DATA]->(d:ClassifierData)
		WITH c, d ORDER BY d.code
		RETURN c, collect(d) as data
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classifier: %w", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("Classifier", id)
	}

	return classifierExportFromRecord(records[0]), nil
}

// ListClassifiers returns classifiers with nested data rows, ordered by id
func (r *Repository) ListClassifiers(ctx context.Context, limit, offset int) ([]model.ClassifierExport, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	query := `
		MATCH (c:Classifier)
		OPTIONAL MATCH (c)-[:HAS_DATA]->(d:ClassifierData)
		WITH c, d ORDER BY c.id, d.code
		RETURN c, collect(d) as data
		ORDER BY c.id
		SKIP $offset LIMIT $limit
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list classifiers: %w", err)
	}

	classifiers := make([]model.ClassifierExport, 0, len(records))
	for _, record := range records {
		classifiers = append(classifiers, *classifierExportFromRecord(record))
	}
	return classifiers, nil
}

// CreateClassifierData attaches a data row to an existing classifier. Rows
// are keyed by (classifierId, code); the guard clause rejects a repeat code.
func (r *Repository) CreateClassifierData(ctx context.Context, data *model.ClassifierData) error {
	query := `
		MATCH (c:Classifier {id: $classifierId})
		WHERE NOT (c)-[:HAS_DATA]->(:ClassifierData {code: $code})
		CREATE (d:ClassifierData {classifierId: $classifierId, code: $code,
		                          description: $description, prompt: $prompt})
		CREATE (c)-[:HAS_DATA]->(d)
		RETURN d.code as code
	`

	records, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"classifierId": data.ClassifierID,
		"code":         data.Code,
		"description":  data.Description,
		"prompt":       optionalStringParam(data.Prompt),
	})
	if err != nil {
		return fmt.Errorf("failed to create classifier data: %w", err)
	}
	if len(records) == 0 {
		exists, err := r.classifierExists(ctx, data.ClassifierID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.ReferentialPrecondition(fmt.Sprintf(
				"ClassifierData references a missing classifier: %s", data.ClassifierID))
		}
		return apperr.DuplicateKey("ClassifierData", data.ClassifierID+"/"+data.Code, nil)
	}

	r.logger.Info("Classifier data created",
		zap.String("classifier_id", data.ClassifierID),
		zap.String("code", data.Code),
	)
	return nil
}

// ListClassifierData returns data rows ordered by classifier id and code
func (r *Repository) ListClassifierData(ctx context.Context, limit, offset int) ([]model.ClassifierData, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	query := `
		MATCH (d:ClassifierData)
		RETURN d
		ORDER BY d.classifierId, d.code
		SKIP $offset LIMIT $limit
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list classifier data: %w", err)
	}

	rows := make([]model.ClassifierData, 0, len(records))
	for _, record := range records {
		props := nodeProps(record, "d")
		rows = append(rows, *classifierDataFromProps(props))
	}
	return rows, nil
}

func (r *Repository) classifierExists(ctx context.Context, id string) (bool, error) {
	records, err := r.store.ExecuteRead(ctx,
		`MATCH (c:Classifier {id: $id}) RETURN c.id as id`,
		map[string]any{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check classifier existence: %w", err)
	}
	return len(records) > 0, nil
}

func classifierExportFromRecord(record *neo4j.Record) *model.ClassifierExport {
	props := nodeProps(record, "c")
	export := &model.ClassifierExport{
		Classifier: model.Classifier{
			ID:          getString(props, "id"),
			Name:        getString(props, "name"),
			IsHierarchy: getBool(props, "isHierarchy"),
			ParentID:    getOptionalString(props, "parentId"),
			Prompt:      getString(props, "prompt"),
			Description: getString(props, "description"),
		},
		Data: []model.ClassifierData{},
	}

	raw, _ := record.Get("data")
	if list, ok := raw.([]any); ok {
		for _, item := range list {
			if node, ok := item.(dbtype.Node); ok {
				export.Data = append(export.Data, *classifierDataFromProps(node.Props))
			}
		}
	}
	return export
}

func classifierDataFromProps(props map[string]any) *model.ClassifierData {
	return &model.ClassifierData{
		ClassifierID: getString(props, "classifierId"),
		Code:         getString(props, "code"),
		Description:  getString(props, "description"),
		Prompt:       getOptionalString(props, "prompt"),
	}
}
