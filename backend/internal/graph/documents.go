package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"docgraph/backend/internal/model"
	"docgraph/backend/pkg/apperr"
)

// CreateDocument creates a document node and its CREATED_BY,
// LAST_MODIFIED_BY and STORED_IN relationships. The referenced users and
// folder must already exist; when any of them is missing the MATCH produces
// no rows and no document node is left behind.
func (r *Repository) CreateDocument(ctx context.Context, doc *model.DocumentCreate) error {
	query := `
		MATCH (u:User {id: $createdBy}), (lm:User {id: $lastModifiedBy}), (f:Folder {id: $parentReference_id})
		CREATE (d:Document {id: $id, name: $name, label: $label, size: $size, file_name: $file_name,
		                    source: $source, type: $type, createdDateTime: $createdDateTime,
		                    lastModifiedDateTime: $lastModifiedDateTime, webUrl: $webUrl,
		                    downloadUrl: $downloadUrl, driveId: $driveId, siteId: $siteId,
		                    status: $status, description: $description})
		CREATE (d)-[:CREATED_BY]->(u)
		CREATE (d)-[:LAST_MODIFIED_BY]->(lm)
		CREATE (d)-[:STORED_IN]->(f)
		RETURN d.id as id
	`

	records, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":                   doc.ID,
		"name":                 doc.Name,
		"label":                doc.Label,
		"size":                 doc.Size,
		"file_name":            optionalStringParam(doc.FileName),
		"source":               doc.Source,
		"type":                 doc.Type,
		"createdDateTime":      doc.CreatedDateTime,
		"lastModifiedDateTime": doc.LastModifiedDateTime,
		"webUrl":               doc.WebURL,
		"downloadUrl":          doc.DownloadURL,
		"driveId":              doc.DriveID,
		"siteId":               doc.SiteID,
		"status":               doc.Status,
		"description":          optionalStringParam(doc.Description),
		"createdBy":            doc.CreatedBy,
		"lastModifiedBy":       doc.LastModifiedBy,
		"parentReference_id":   doc.ParentReferenceID,
	})
	if err != nil {
		if apperr.IsDuplicateKey(err) {
			return apperr.DuplicateKey("Document", doc.ID, err)
		}
		return fmt.Errorf("failed to create document: %w", err)
	}
	if len(records) == 0 {
		return apperr.ReferentialPrecondition(fmt.Sprintf(
			"document %s references a missing user or folder (createdBy=%s, lastModifiedBy=%s, parentReference_id=%s)",
			doc.ID, doc.CreatedBy, doc.LastModifiedBy, doc.ParentReferenceID))
	}

	r.logger.Info("Document created", zap.String("document_id", doc.ID))
	return nil
}

// GetDocument returns a document hydrated with its reference ids. Absent
// relationship targets map to nil fields, never an error.
func (r *Repository) GetDocument(ctx context.Context, id string) (*model.Document, error) {
	query := `
		MATCH (d:Document {id: $id})
		OPTIONAL MATCH (d)-[:CREATED_BY]->(u:User)
		OPTIONAL MATCH (d)-[:LAST_MODIFIED_BY]->(lm:User)
		OPTIONAL MATCH (d)-[:STORED_IN]->(f:Folder)
		RETURN d, u.id as createdBy, lm.id as lastModifiedBy, f.id as parentReferenceId
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("Document", id)
	}

	return documentFromRecord(records[0]), nil
}

// ListDocuments returns documents ordered by creation time
func (r *Repository) ListDocuments(ctx context.Context, limit, offset int) ([]model.Document, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	query := `
		MATCH (d:Document)
		OPTIONAL MATCH (d)-[:CREATED_BY]->(u:User)
		OPTIONAL MATCH (d)-[:LAST_MODIFIED_BY]->(lm:User)
		OPTIONAL MATCH (d)-[:STORED_IN]->(f:Folder)
		RETURN d, u.id as createdBy, lm.id as lastModifiedBy, f.id as parentReferenceId
		ORDER BY d.createdDateTime, d.id
		SKIP $offset LIMIT $limit
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]model.Document, 0, len(records))
	for _, record := range records {
		docs = append(docs, *documentFromRecord(record))
	}
	return docs, nil
}

// UpdateDocument merges the supplied properties into an existing node,
// leaving relationships untouched. The id is immutable.
func (r *Repository) UpdateDocument(ctx context.Context, id string, update *model.DocumentUpdate) error {
	props := updateProps(update)
	if len(props) == 0 {
		return apperr.InvalidArgument("update payload carries no properties")
	}

	query := `
		MATCH (d:Document {id: $id})
		SET d += $props
		RETURN d.id as id
	`

	records, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":    id,
		"props": props,
	})
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if len(records) == 0 {
		return apperr.NotFound("Document", id)
	}

	r.logger.Info("Document updated", zap.String("document_id", id))
	return nil
}

// DeleteDocument detaches and removes the node with all its relationships.
// Relationship targets survive.
func (r *Repository) DeleteDocument(ctx context.Context, id string) error {
	query := `
		MATCH (d:Document {id: $id})
		WITH d, d.id as deletedId
		DETACH DELETE d
		RETURN deletedId
	`

	records, err := r.store.ExecuteWrite(ctx, query, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if len(records) == 0 {
		return apperr.NotFound("Document", id)
	}

	r.logger.Info("Document deleted", zap.String("document_id", id))
	return nil
}

func documentFromRecord(record *neo4j.Record) *model.Document {
	props := nodeProps(record, "d")
	doc := &model.Document{
		ID:                   getString(props, "id"),
		Name:                 getString(props, "name"),
		Label:                getString(props, "label"),
		Size:                 getInt64(props, "size"),
		FileName:             getOptionalString(props, "file_name"),
		Source:               getString(props, "source"),
		Type:                 getString(props, "type"),
		CreatedDateTime:      getTimestamp(props, "createdDateTime"),
		LastModifiedDateTime: getTimestamp(props, "lastModifiedDateTime"),
		WebURL:               getString(props, "webUrl"),
		DownloadURL:          getString(props, "downloadUrl"),
		DriveID:              getString(props, "driveId"),
		SiteID:               getString(props, "siteId"),
		Status:               getString(props, "status"),
		Description:          getOptionalString(props, "description"),
	}
	doc.CreatedBy = stringColumn(record, "createdBy")
	doc.LastModifiedBy = stringColumn(record, "lastModifiedBy")
	doc.ParentReferenceID = stringColumn(record, "parentReferenceId")
	return doc
}

// stringColumn reads a scalar column that may be null
func stringColumn(record *neo4j.Record, key string) *string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return nil
	}
	if str, ok := val.(string); ok {
		return &str
	}
	return nil
}

func updateProps(update *model.DocumentUpdate) map[string]any {
	props := map[string]any{}
	set := func(key string, val *string) {
		if val != nil {
			props[key] = *val
		}
	}
	set("name", update.Name)
	set("label", update.Label)
	set("file_name", update.FileName)
	set("source", update.Source)
	set("type", update.Type)
	set("createdDateTime", update.CreatedDateTime)
	set("lastModifiedDateTime", update.LastModifiedDateTime)
	set("webUrl", update.WebURL)
	set("downloadUrl", update.DownloadURL)
	set("driveId", update.DriveID)
	set("siteId", update.SiteID)
	set("status", update.Status)
	set("description", update.Description)
	if update.Size != nil {
		props["size"] = *update.Size
	}
	return props
}
