package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"docgraph/backend/internal/model"
	"docgraph/backend/pkg/apperr"
)

// CreateBGSClassification attaches a BGS classification to an existing
// document; one per document.
func (r *Repository) CreateBGSClassification(ctx context.Context, bgs *model.BGSClassification) error {
	query := `
		MATCH (d:Document {id: $documentId})
		WHERE NOT (d)-[:HAS_BGS_CLASSIFICATION]->(:BGSClassification)
		CREATE (b:BGSClassification {documentId: $documentId, code: $code, explanation: $explanation,
		                             tooltip: $tooltip, appliedAt: $appliedAt})
		CREATE (d)-[:HAS_BGS_CLASSIFICATION]->(b)
		RETURN b.documentId as documentId
	`

	records, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"documentId":  bgs.DocumentID,
		"code":        bgs.Code,
		"explanation": bgs.Explanation,
		"tooltip":     bgs.Tooltip,
		"appliedAt":   bgs.AppliedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create BGS classification: %w", err)
	}
	if len(records) == 0 {
		return r.resolveAttachFailure(ctx, "BGSClassification", bgs.DocumentID)
	}

	r.logger.Info("BGS classification created",
		zap.String("document_id", bgs.DocumentID),
		zap.String("code", bgs.Code),
	)
	return nil
}

// GetBGSClassification returns the BGS classification for a document
func (r *Repository) GetBGSClassification(ctx context.Context, documentID string) (*model.BGSClassification, error) {
	query := `
		MATCH (:Document {id: $documentId})-[:HAS_BGS_CLASSIFICATION]->(b:BGSClassification)
		RETURN b
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"documentId": documentID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch BGS classification: %w", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("BGSClassification", documentID)
	}

	return bgsFromRecord(records[0]), nil
}

// ListBGSClassifications returns BGS classifications ordered by document id
func (r *Repository) ListBGSClassifications(ctx context.Context, limit, offset int) ([]model.BGSClassification, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	query := `
		MATCH (b:BGSClassification)
		RETURN b
		ORDER BY b.documentId
		SKIP $offset LIMIT $limit
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list BGS classifications: %w", err)
	}

	items := make([]model.BGSClassification, 0, len(records))
	for _, record := range records {
		items = append(items, *bgsFromRecord(record))
	}
	return items, nil
}

// CreateUserEdit records a manual edit against a document. The editing user
// must exist; one edit per (document, field).
func (r *Repository) CreateUserEdit(ctx context.Context, edit *model.UserEdit) error {
	query := `
		MATCH (d:Document {id: $documentId}), (u:User {id: $editedBy})
		WHERE NOT (d)-[:HAS_USER_EDIT]->(:UserEdit {field: $field})
		CREATE (e:UserEdit {documentId: $documentId, field: $field, originalValue: $originalValue,
		                    editedValue: $editedValue, editedBy: $editedBy, editedAt: $editedAt,
		                    reason: $reason})
		CREATE (d)-[:HAS_USER_EDIT]->(e)
		CREATE (e)-[:EDITED_BY]->(u)
		RETURN e.field as field
	`

	records, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"documentId":    edit.DocumentID,
		"field":         edit.Field,
		"originalValue": edit.OriginalValue,
		"editedValue":   edit.EditedValue,
		"editedBy":      edit.EditedBy,
		"editedAt":      edit.EditedAt,
		"reason":        optionalStringParam(edit.Reason),
	})
	if err != nil {
		return fmt.Errorf("failed to create user edit: %w", err)
	}
	if len(records) == 0 {
		return r.resolveUserEditFailure(ctx, edit)
	}

	r.logger.Info("User edit created",
		zap.String("document_id", edit.DocumentID),
		zap.String("field", edit.Field),
	)
	return nil
}

// ListUserEdits returns user edits ordered by document id and field
func (r *Repository) ListUserEdits(ctx context.Context, limit, offset int) ([]model.UserEdit, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	query := `
		MATCH (e:UserEdit)
		RETURN e
		ORDER BY e.documentId, e.field
		SKIP $offset LIMIT $limit
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list user edits: %w", err)
	}

	edits := make([]model.UserEdit, 0, len(records))
	for _, record := range records {
		edits = append(edits, *userEditFromRecord(record))
	}
	return edits, nil
}

// ExportUserEdits returns every edit attached to a document
func (r *Repository) ExportUserEdits(ctx context.Context) ([]model.UserEdit, error) {
	query := `
		MATCH (:Document)-[:HAS_USER_EDIT]->(e:UserEdit)
		RETURN e
		ORDER BY e.documentId, e.field
	`

	records, err := r.store.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to export user edits: %w", err)
	}

	edits := make([]model.UserEdit, 0, len(records))
	for _, record := range records {
		edits = append(edits, *userEditFromRecord(record))
	}
	return edits, nil
}

// ExportAIEdits returns machine-made edits. The API never writes AIEdit
// nodes itself; an upstream pipeline does.
func (r *Repository) ExportAIEdits(ctx context.Context) ([]model.AIEdit, error) {
	query := `
		MATCH (d:Document)-[:HAS_AI_EDIT]->(e:AIEdit)
		RETURN d.id as documentId, e.field as field, e.originalValue as originalValue,
		       e.editedValue as editedValue, e.editedAt as editedAt
		ORDER BY documentId, field
	`

	records, err := r.store.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to export AI edits: %w", err)
	}

	edits := make([]model.AIEdit, 0, len(records))
	for _, record := range records {
		edits = append(edits, model.AIEdit{
			DocumentID:    derefString(stringColumn(record, "documentId")),
			Field:         derefString(stringColumn(record, "field")),
			OriginalValue: derefString(stringColumn(record, "originalValue")),
			EditedValue:   derefString(stringColumn(record, "editedValue")),
			EditedAt:      derefString(stringColumn(record, "editedAt")),
		})
	}
	return edits, nil
}

func (r *Repository) resolveUserEditFailure(ctx context.Context, edit *model.UserEdit) error {
	docExists, err := r.documentExists(ctx, edit.DocumentID)
	if err != nil {
		return err
	}
	if !docExists {
		return apperr.ReferentialPrecondition(fmt.Sprintf(
			"UserEdit references a missing document: %s", edit.DocumentID))
	}
	userRecords, err := r.store.ExecuteRead(ctx,
		`MATCH (u:User {id: $id}) RETURN u.id as id`,
		map[string]any{"id": edit.EditedBy})
	if err != nil {
		return err
	}
	if len(userRecords) == 0 {
		return apperr.ReferentialPrecondition(fmt.Sprintf(
			"UserEdit references a missing user: %s", edit.EditedBy))
	}
	return apperr.DuplicateKey("UserEdit", edit.DocumentID+"/"+edit.Field, nil)
}

func bgsFromRecord(record *neo4j.Record) *model.BGSClassification {
	props := nodeProps(record, "b")
	return &model.BGSClassification{
		DocumentID:  getString(props, "documentId"),
		Code:        getString(props, "code"),
		Explanation: getString(props, "explanation"),
		Tooltip:     getString(props, "tooltip"),
		AppliedAt:   getTimestamp(props, "appliedAt"),
	}
}

func userEditFromRecord(record *neo4j.Record) *model.UserEdit {
	props := nodeProps(record, "e")
	return &model.UserEdit{
		DocumentID:    getString(props, "documentId"),
		Field:         getString(props, "field"),
		OriginalValue: getString(props, "originalValue"),
		EditedValue:   getString(props, "editedValue"),
		EditedBy:      getString(props, "editedBy"),
		EditedAt:      getTimestamp(props, "editedAt"),
		Reason:        getOptionalString(props, "reason"),
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
