package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"docgraph/backend/internal/model"
	"docgraph/backend/pkg/apperr"
)

// CreateFolder creates a folder node; duplicates are rejected by the
// uniqueness constraint on Folder.id.
func (r *Repository) CreateFolder(ctx context.Context, folder *model.Folder) error {
	query := `
		CREATE (f:Folder {id: $id, name: $name, path: $path, driveType: $driveType,
		                  driveId: $driveId, siteId: $siteId})
		RETURN f.id as id
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":        folder.ID,
		"name":      folder.Name,
		"path":      folder.Path,
		"driveType": folder.DriveType,
		"driveId":   folder.DriveID,
		"siteId":    folder.SiteID,
	})
	if err != nil {
		if apperr.IsDuplicateKey(err) {
			return apperr.DuplicateKey("Folder", folder.ID, err)
		}
		return fmt.Errorf("failed to create folder: %w", err)
	}

	r.logger.Info("Folder created", zap.String("folder_id", folder.ID))
	return nil
}

// GetFolder returns a folder by id
func (r *Repository) GetFolder(ctx context.Context, id string) (*model.Folder, error) {
	query := `
		MATCH (f:Folder {id: $id})
		RETURN f
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch folder: %w", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("Folder", id)
	}

	return folderFromRecord(records[0]), nil
}

// ListFolders returns folders ordered by name
func (r *Repository) ListFolders(ctx context.Context, limit, offset int) ([]model.Folder, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	query := `
		MATCH (f:Folder)
		RETURN f
		ORDER BY f.name, f.id
		SKIP $offset LIMIT $limit
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	folders := make([]model.Folder, 0, len(records))
	for _, record := range records {
		folders = append(folders, *folderFromRecord(record))
	}
	return folders, nil
}

func folderFromRecord(record *neo4j.Record) *model.Folder {
	props := nodeProps(record, "f")
	return folderFromProps(props)
}

func folderFromProps(props map[string]any) *model.Folder {
	return &model.Folder{
		ID:        getString(props, "id"),
		Name:      getString(props, "name"),
		Path:      getString(props, "path"),
		DriveType: getString(props, "driveType"),
		DriveID:   getString(props, "driveId"),
		SiteID:    getString(props, "siteId"),
	}
}
