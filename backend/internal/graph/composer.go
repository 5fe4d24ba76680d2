package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"docgraph/backend/internal/model"
	"docgraph/backend/pkg/apperr"
)

// Compose builds the denormalized external representation of a document.
// The five related nodes are fetched through optional joins in one query;
// each is independently optional and a missing target degrades to a null
// nested field instead of aborting the read.
func (r *Repository) Compose(ctx context.Context, documentID string) (*model.DocumentExport, error) {
	query := `
		MATCH (d:Document {id: $id})
		OPTIONAL MATCH (d)-[:CREATED_BY]->(u:User)
		OPTIONAL MATCH (d)-[:LAST_MODIFIED_BY]->(lm:User)
		OPTIONAL MATCH (d)-[:STORED_IN]->(f:Folder)
		OPTIONAL MATCH (d)-[:HAS_METADATA]->(m:FileMetadata)
		OPTIONAL MATCH (d)-[:HAS_VERSION]->(v:Version)
		RETURN d, u, lm, f, m, v
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": documentID})
	if err != nil {
		return nil, fmt.Errorf("failed to compose document: %w", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("Document", documentID)
	}

	record := records[0]
	export := composeExport(
		nodeProps(record, "d"),
		nodeProps(record, "u"),
		nodeProps(record, "lm"),
		nodeProps(record, "f"),
		nodeProps(record, "m"),
		nodeProps(record, "v"),
	)

	r.logger.Info("Document composed", zap.String("document_id", documentID))
	return export, nil
}

// composeExport maps the fetched node property sets onto the external
// record. Nil property sets produce null nested fields. The download URL is
// rekeyed to the literal name external consumers depend on.
func composeExport(doc, createdBy, lastModifiedBy, folder, meta, version map[string]any) *model.DocumentExport {
	export := &model.DocumentExport{
		Name:                 getString(doc, "name"),
		Source:               getString(doc, "source"),
		FileName:             getOptionalString(doc, "file_name"),
		LastModifiedDate:     getTimestamp(doc, "lastModifiedDateTime"),
		Size:                 getInt64(doc, "size"),
		ID:                   getString(doc, "id"),
		SiteID:               getString(doc, "siteId"),
		DriveID:              getString(doc, "driveId"),
		Label:                getString(doc, "label"),
		Type:                 getString(doc, "type"),
		DownloadURL:          getString(doc, "downloadUrl"),
		CreatedDateTime:      getTimestamp(doc, "createdDateTime"),
		LastModifiedDateTime: getTimestamp(doc, "lastModifiedDateTime"),
		WebURL:               getString(doc, "webUrl"),
		Status:               getString(doc, "status"),
	}

	if createdBy != nil {
		export.CreatedBy = &model.UserRef{
			ID:          getString(createdBy, "id"),
			Email:       getString(createdBy, "email"),
			DisplayName: getString(createdBy, "displayName"),
		}
	}
	if lastModifiedBy != nil {
		export.LastModifiedBy = &model.UserRef{
			ID:          getString(lastModifiedBy, "id"),
			Email:       getString(lastModifiedBy, "email"),
			DisplayName: getString(lastModifiedBy, "displayName"),
		}
	}
	if folder != nil {
		f := folderFromProps(folder)
		export.ParentReference = &model.FolderRef{
			ID:        f.ID,
			Name:      f.Name,
			Path:      f.Path,
			DriveType: f.DriveType,
			DriveID:   f.DriveID,
			SiteID:    f.SiteID,
		}
	}
	if meta != nil {
		m := fileMetadataFromProps(meta)
		export.File = &model.FileFacet{
			Hashes:   model.Hashes{QuickXorHash: m.QuickXorHash},
			MimeType: m.MimeType,
		}
		export.FileSystemInfo = &model.FileSystemInfo{
			CreatedDateTime:      m.CreatedDateTime,
			LastModifiedDateTime: m.LastModifiedDateTime,
		}
		export.Shared = &model.SharedFacet{Scope: m.SharedScope}
	}
	if version != nil {
		v := versionFromProps(version)
		export.ETag = &v.ETag
		export.CTag = &v.CTag
	}

	return export
}

// Decompose breaks the flat aggregate payload into nodes and typed
// relationships. The user, folder and session targets are upserted first,
// each independently idempotent; the document, its metadata, its version and
// all six relationships are then created inside one write transaction so a
// late failure cannot leave a partial document structure behind.
func (r *Repository) Decompose(ctx context.Context, payload *model.AggregatePayload) error {
	if err := r.upsertUser(ctx, payload.CreatedByID, payload.CreatedByEmail, payload.CreatedByDisplayName); err != nil {
		return fmt.Errorf("upsert createdBy user: %w", err)
	}
	if err := r.upsertUser(ctx, payload.LastModifiedByID, payload.LastModifiedByEmail, payload.LastModifiedByDisplayName); err != nil {
		return fmt.Errorf("upsert lastModifiedBy user: %w", err)
	}
	if err := r.upsertFolder(ctx, payload); err != nil {
		return fmt.Errorf("upsert folder: %w", err)
	}
	if err := r.upsertSession(ctx, payload); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}

	err := r.store.WriteTx(ctx, func(tx neo4j.ManagedTransaction) error {
		steps := []struct {
			name   string
			cypher string
			params map[string]any
		}{
			{"create document", decomposeDocumentCypher, decomposeDocumentParams(payload)},
			{"create file metadata", decomposeMetadataCypher, decomposeMetadataParams(payload)},
			{"create version", decomposeVersionCypher, decomposeVersionParams(payload)},
			{"create relationships", decomposeRelationshipsCypher, decomposeRelationshipParams(payload)},
		}
		for _, step := range steps {
			result, err := tx.Run(ctx, step.cypher, step.params)
			if err != nil {
				return fmt.Errorf("%s: %w", step.name, err)
			}
			records, err := result.Collect(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", step.name, err)
			}
			if len(records) == 0 {
				return fmt.Errorf("%s: no rows produced", step.name)
			}
		}
		return nil
	})
	if err != nil {
		if apperr.IsDuplicateKey(err) {
			return apperr.DuplicateKey("Document", payload.ID, err)
		}
		return fmt.Errorf("failed to decompose aggregate %s: %w", payload.ID, err)
	}

	r.logger.Info("Aggregate decomposed",
		zap.String("document_id", payload.ID),
		zap.String("session_id", payload.SessionID),
	)
	return nil
}

func (r *Repository) upsertUser(ctx context.Context, id, email, displayName string) error {
	query := `
		MERGE (u:User {id: $id})
		ON CREATE SET u.email = $email, u.displayName = $displayName
		RETURN u.id as id
	`
	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":          id,
		"email":       email,
		"displayName": displayName,
	})
	return err
}

func (r *Repository) upsertFolder(ctx context.Context, payload *model.AggregatePayload) error {
	query := `
		MERGE (f:Folder {id: $id})
		ON CREATE SET f.name = $name, f.path = $path, f.driveType = $driveType,
		              f.driveId = $driveId, f.siteId = $siteId
		RETURN f.id as id
	`
	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":        payload.ParentReferenceID,
		"name":      payload.ParentReferenceName,
		"path":      payload.ParentReferencePath,
		"driveType": payload.ParentReferenceDriveType,
		"driveId":   payload.ParentReferenceDriveID,
		"siteId":    payload.ParentReferenceSiteID,
	})
	return err
}

func (r *Repository) upsertSession(ctx context.Context, payload *model.AggregatePayload) error {
	query := `
		MERGE (s:Session {sessionId: $sessionId})
		ON CREATE SET s.sessionName = $sessionName, s.createdAt = $createdAt,
		              s.createdBy = $createdBy, s.fileCount = $fileCount,
		              s.completedAt = $completedAt, s.status = $status,
		              s.warnings = $warnings, s.rowCount = $rowCount
		RETURN s.sessionId as sessionId
	`
	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"sessionId":   payload.SessionID,
		"sessionName": payload.SessionName,
		"createdAt":   payload.SessionCreatedAt,
		"createdBy":   payload.SessionCreatedBy,
		"fileCount":   payload.SessionFileCount,
		"completedAt": optionalStringParam(payload.SessionCompletedAt),
		"status":      payload.SessionStatus,
		"warnings":    payload.SessionWarnings,
		"rowCount":    payload.SessionRowCount,
	})
	return err
}

const decomposeDocumentCypher = `
	CREATE (d:Document {id: $id, name: $name, label: $label, size: $size, file_name: $file_name,
	                    source: $source, type: $type, createdDateTime: $createdDateTime,
	                    lastModifiedDateTime: $lastModifiedDateTime, webUrl: $webUrl,
	                    downloadUrl: $downloadUrl, driveId: $driveId, siteId: $siteId,
	                    status: $status, description: $description})
	RETURN d.id as id
`

const decomposeMetadataCypher = `
	CREATE (m:FileMetadata {documentId: $documentId, mimeType: $mimeType, quickXorHash: $quickXorHash,
	                        sharedScope: $sharedScope, createdDateTime: $createdDateTime,
	                        lastModifiedDateTime: $lastModifiedDateTime})
	RETURN m.documentId as documentId
`

const decomposeVersionCypher = `
	CREATE (v:Version {documentId: $documentId, eTag: $eTag, cTag: $cTag,
	                   timestamp: $timestamp, versionNumber: $versionNumber})
	RETURN v.documentId as documentId
`

const decomposeRelationshipsCypher = `
	MATCH (d:Document {id: $id}),
	      (u:User {id: $createdBy}), (lm:User {id: $lastModifiedBy}),
	      (f:Folder {id: $folderId}), (s:Session {sessionId: $sessionId}),
	      (m:FileMetadata {documentId: $id}), (v:Version {documentId: $id})
	CREATE (d)-[:CREATED_BY]->(u)
	CREATE (d)-[:LAST_MODIFIED_BY]->(lm)
	CREATE (d)-[:STORED_IN]->(f)
	CREATE (d)-[:HAS_METADATA]->(m)
	CREATE (d)-[:HAS_VERSION]->(v)
	CREATE (d)-[:IN_SESSION]->(s)
	RETURN d.id as id
`

func decomposeDocumentParams(p *model.AggregatePayload) map[string]any {
	return map[string]any{
		"id":                   p.ID,
		"name":                 p.Name,
		"label":                p.Label,
		"size":                 p.Size,
		"file_name":            optionalStringParam(p.FileName),
		"source":               p.Source,
		"type":                 p.Type,
		"createdDateTime":      p.CreatedDateTime,
		"lastModifiedDateTime": p.LastModifiedDateTime,
		"webUrl":               p.WebURL,
		"downloadUrl":          p.DownloadURL,
		"driveId":              p.DriveID,
		"siteId":               p.SiteID,
		"status":               p.Status,
		"description":          optionalStringParam(p.Description),
	}
}

func decomposeMetadataParams(p *model.AggregatePayload) map[string]any {
	return map[string]any{
		"documentId":           p.ID,
		"mimeType":             p.FileMimeType,
		"quickXorHash":         p.FileQuickXorHash,
		"sharedScope":          p.FileSharedScope,
		"createdDateTime":      p.FileCreatedDateTime,
		"lastModifiedDateTime": p.FileLastModifiedDateTime,
	}
}

func decomposeVersionParams(p *model.AggregatePayload) map[string]any {
	return map[string]any{
		"documentId":    p.ID,
		"eTag":          p.VersionETag,
		"cTag":          p.VersionCTag,
		"timestamp":     p.VersionTimestamp,
		"versionNumber": p.VersionVersionNumber,
	}
}

func decomposeRelationshipParams(p *model.AggregatePayload) map[string]any {
	return map[string]any{
		"id":             p.ID,
		"createdBy":      p.CreatedByID,
		"lastModifiedBy": p.LastModifiedByID,
		"folderId":       p.ParentReferenceID,
		"sessionId":      p.SessionID,
	}
}
