package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"docgraph/backend/internal/model"
	"docgraph/backend/pkg/apperr"
)

// CreateFileMetadata attaches a metadata node to an existing document. The
// store models the 1:1 link as a HAS_METADATA relationship, so the guard
// clause rejects a second metadata node for the same document.
func (r *Repository) CreateFileMetadata(ctx context.Context, meta *model.FileMetadata) error {
	query := `
		MATCH (d:Document {id: $documentId})
		WHERE NOT (d)-[:HAS_METADATA]->(:FileMetadata)
		CREATE (m:FileMetadata {documentId: $documentId, mimeType: $mimeType, quickXorHash: $quickXorHash,
		                        sharedScope: $sharedScope, createdDateTime: $createdDateTime,
		                        lastModifiedDateTime: $lastModifiedDateTime})
		CREATE (d)-[:HAS_METADATA]->(m)
		RETURN m.documentId as documentId
	`

	records, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"documentId":           meta.DocumentID,
		"mimeType":             meta.MimeType,
		"quickXorHash":         meta.QuickXorHash,
		"sharedScope":          meta.SharedScope,
		"createdDateTime":      meta.CreatedDateTime,
		"lastModifiedDateTime": meta.LastModifiedDateTime,
	})
	if err != nil {
		return fmt.Errorf("failed to create file metadata: %w", err)
	}
	if len(records) == 0 {
		return r.resolveAttachFailure(ctx, "FileMetadata", meta.DocumentID)
	}

	r.logger.Info("File metadata created", zap.String("document_id", meta.DocumentID))
	return nil
}

// GetFileMetadata returns the metadata node for a document
func (r *Repository) GetFileMetadata(ctx context.Context, documentID string) (*model.FileMetadata, error) {
	query := `
		MATCH (:Document {id: $documentId})-[:HAS_METADATA]->(m:FileMetadata)
		RETURN m
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"documentId": documentID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file metadata: %w", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("FileMetadata", documentID)
	}

	return fileMetadataFromRecord(records[0]), nil
}

// ListFileMetadata returns metadata nodes ordered by document id
func (r *Repository) ListFileMetadata(ctx context.Context, limit, offset int) ([]model.FileMetadata, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	query := `
		MATCH (m:FileMetadata)
		RETURN m
		ORDER BY m.documentId
		SKIP $offset LIMIT $limit
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list file metadata: %w", err)
	}

	items := make([]model.FileMetadata, 0, len(records))
	for _, record := range records {
		items = append(items, *fileMetadataFromRecord(record))
	}
	return items, nil
}

// CreateVersion attaches a version node to an existing document
func (r *Repository) CreateVersion(ctx context.Context, version *model.Version) error {
	query := `
		MATCH (d:Document {id: $documentId})
		WHERE NOT (d)-[:HAS_VERSION]->(:Version)
		CREATE (v:Version {documentId: $documentId, eTag: $eTag, cTag: $cTag,
		                   timestamp: $timestamp, versionNumber: $versionNumber})
		CREATE (d)-[:HAS_VERSION]->(v)
		RETURN v.documentId as documentId
	`

	records, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"documentId":    version.DocumentID,
		"eTag":          version.ETag,
		"cTag":          version.CTag,
		"timestamp":     version.Timestamp,
		"versionNumber": version.VersionNumber,
	})
	if err != nil {
		return fmt.Errorf("failed to create version: %w", err)
	}
	if len(records) == 0 {
		return r.resolveAttachFailure(ctx, "Version", version.DocumentID)
	}

	r.logger.Info("Version created", zap.String("document_id", version.DocumentID))
	return nil
}

// GetVersion returns the version node for a document
func (r *Repository) GetVersion(ctx context.Context, documentID string) (*model.Version, error) {
	query := `
		MATCH (:Document {id: $documentId})-[:HAS_VERSION]->(v:Version)
		RETURN v
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"documentId": documentID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch version: %w", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("Version", documentID)
	}

	return versionFromRecord(records[0]), nil
}

// ListVersions returns version nodes ordered by document id
func (r *Repository) ListVersions(ctx context.Context, limit, offset int) ([]model.Version, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	query := `
		MATCH (v:Version)
		RETURN v
		ORDER BY v.documentId
		SKIP $offset LIMIT $limit
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}

	items := make([]model.Version, 0, len(records))
	for _, record := range records {
		items = append(items, *versionFromRecord(record))
	}
	return items, nil
}

// resolveAttachFailure disambiguates a zero-row attach: a missing document
// is a referential failure, an already-attached node a duplicate.
func (r *Repository) resolveAttachFailure(ctx context.Context, entity, documentID string) error {
	exists, err := r.documentExists(ctx, documentID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ReferentialPrecondition(fmt.Sprintf(
			"%s references a missing document: %s", entity, documentID))
	}
	return apperr.DuplicateKey(entity, documentID, nil)
}

func (r *Repository) documentExists(ctx context.Context, id string) (bool, error) {
	records, err := r.store.ExecuteRead(ctx,
		`MATCH (d:Document {id: $id}) RETURN d.id as id`,
		map[string]any{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check document existence: %w", err)
	}
	return len(records) > 0, nil
}

func fileMetadataFromRecord(record *neo4j.Record) *model.FileMetadata {
	props := nodeProps(record, "m")
	return fileMetadataFromProps(props)
}

func fileMetadataFromProps(props map[string]any) *model.FileMetadata {
	return &model.FileMetadata{
		DocumentID:           getString(props, "documentId"),
		MimeType:             getString(props, "mimeType"),
		QuickXorHash:         getString(props, "quickXorHash"),
		SharedScope:          getString(props, "sharedScope"),
		CreatedDateTime:      getTimestamp(props, "createdDateTime"),
		LastModifiedDateTime: getTimestamp(props, "lastModifiedDateTime"),
	}
}

func versionFromRecord(record *neo4j.Record) *model.Version {
	props := nodeProps(record, "v")
	return versionFromProps(props)
}

func versionFromProps(props map[string]any) *model.Version {
	return &model.Version{
		DocumentID:    getString(props, "documentId"),
		ETag:          getString(props, "eTag"),
		CTag:          getString(props, "cTag"),
		Timestamp:     getTimestamp(props, "timestamp"),
		VersionNumber: getInt64(props, "versionNumber"),
	}
}
