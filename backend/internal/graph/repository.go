package graph

import (
	"go.uber.org/zap"

	"docgraph/backend/internal/store"
	"docgraph/backend/pkg/apperr"
	"docgraph/backend/pkg/logger"
)

// Pagination bounds for list operations
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Repository executes all graph operations for the document data model.
// Canonical state lives in the store; nothing is cached across calls.
type Repository struct {
	store  *store.Store
	logger *zap.Logger
}

// NewRepository creates a repository over the given store
func NewRepository(st *store.Store) *Repository {
	return &Repository{
		store:  st,
		logger: logger.Get(),
	}
}

// validatePage rejects out-of-range pagination values
func validatePage(limit, offset int) error {
	if limit < 1 || limit > MaxLimit {
		return apperr.InvalidArgument("limit must be between 1 and 100")
	}
	if offset < 0 {
		return apperr.InvalidArgument("offset must be non-negative")
	}
	return nil
}
