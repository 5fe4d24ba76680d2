package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"docgraph/backend/internal/model"
	"docgraph/backend/pkg/apperr"
)

// CreateSession creates a session node; duplicates are rejected by the
// uniqueness constraint on Session.sessionId.
func (r *Repository) CreateSession(ctx context.Context, session *model.Session) error {
	query := `
		CREATE (s:Session {sessionId: $sessionId, sessionName: $sessionName, createdAt: $createdAt,
		                   createdBy: $createdBy, fileCount: $fileCount, completedAt: $completedAt,
		                   status: $status, warnings: $warnings, rowCount: $rowCount})
		RETURN s.sessionId as sessionId
	`

	_, err := r.store.ExecuteWrite(ctx, query, sessionParams(session))
	if err != nil {
		if apperr.IsDuplicateKey(err) {
			return apperr.DuplicateKey("Session", session.SessionID, err)
		}
		return fmt.Errorf("failed to create session: %w", err)
	}

	r.logger.Info("Session created", zap.String("session_id", session.SessionID))
	return nil
}

// GetSession returns a session by its sessionId
func (r *Repository) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := `
		MATCH (s:Session {sessionId: $sessionId})
		RETURN s
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"sessionId": sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("Session", sessionID)
	}

	return sessionFromRecord(records[0]), nil
}

// ListSessions returns sessions ordered by creation time
func (r *Repository) ListSessions(ctx context.Context, limit, offset int) ([]model.Session, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	query := `
		MATCH (s:Session)
		RETURN s
		ORDER BY s.createdAt, s.sessionId
		SKIP $offset LIMIT $limit
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]model.Session, 0, len(records))
	for _, record := range records {
		sessions = append(sessions, *sessionFromRecord(record))
	}
	return sessions, nil
}

func sessionParams(session *model.Session) map[string]any {
	return map[string]any{
		"sessionId":   session.SessionID,
		"sessionName": session.SessionName,
		"createdAt":   session.CreatedAt,
		"createdBy":   session.CreatedBy,
		"fileCount":   session.FileCount,
		"completedAt": optionalStringParam(session.CompletedAt),
		"status":      session.Status,
		"warnings":    session.Warnings,
		"rowCount":    session.RowCount,
	}
}

func sessionFromRecord(record *neo4j.Record) *model.Session {
	props := nodeProps(record, "s")
	return &model.Session{
		SessionID:   getString(props, "sessionId"),
		SessionName: getString(props, "sessionName"),
		CreatedAt:   getTimestamp(props, "createdAt"),
		CreatedBy:   getString(props, "createdBy"),
		FileCount:   getInt64(props, "fileCount"),
		CompletedAt: getOptionalString(props, "completedAt"),
		Status:      getString(props, "status"),
		Warnings:    getInt64(props, "warnings"),
		RowCount:    getInt64(props, "rowCount"),
	}
}
