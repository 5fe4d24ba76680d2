package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"docgraph/backend/internal/model"
	"docgraph/backend/pkg/apperr"
)

// CreateUser creates a user node; the uniqueness constraint on User.id
// rejects duplicates.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		CREATE (u:User {id: $id, email: $email, displayName: $displayName})
		RETURN u.id as id
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":          user.ID,
		"email":       user.Email,
		"displayName": user.DisplayName,
	})
	if err != nil {
		if apperr.IsDuplicateKey(err) {
			return apperr.DuplicateKey("User", user.ID, err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("User created", zap.String("user_id", user.ID))
	return nil
}

// GetUser returns a user by id
func (r *Repository) GetUser(ctx context.Context, id string) (*model.User, error) {
	query := `
		MATCH (u:User {id: $id})
		RETURN u
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("User", id)
	}

	return userFromRecord(records[0]), nil
}

// ListUsers returns users ordered by id for deterministic pagination
func (r *Repository) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	query := `
		MATCH (u:User)
		RETURN u
		ORDER BY u.id
		SKIP $offset LIMIT $limit
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]model.User, 0, len(records))
	for _, record := range records {
		users = append(users, *userFromRecord(record))
	}
	return users, nil
}

func userFromRecord(record *neo4j.Record) *model.User {
	props := nodeProps(record, "u")
	return &model.User{
		ID:          getString(props, "id"),
		Email:       getString(props, "email"),
		DisplayName: getString(props, "displayName"),
	}
}
