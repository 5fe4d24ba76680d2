package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"docgraph/backend/pkg/apperr"
	"docgraph/backend/pkg/config"
	"docgraph/backend/pkg/logger"
)

// Store owns the Neo4j driver and executes parameterized graph queries.
// Sessions are scoped per call and released on every exit path.
type Store struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// New creates the driver, verifies connectivity and returns the store.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	timeout := time.Duration(cfg.Neo4jTimeout) * time.Second

	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
		func(c *neo4j.Config) {
			c.MaxConnectionPoolSize = cfg.Neo4jPoolSize
			c.SocketConnectTimeout = timeout
		},
	)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}

	verifyCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(verifyCtx); err != nil {
		_ = driver.Close(ctx)
		return nil, apperr.StoreUnavailable(err)
	}

	return &Store{
		driver: driver,
		logger: logger.Get(),
	}, nil
}

// Close closes the Neo4j driver connection
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Ping reports whether the backend is reachable right now
func (s *Store) Ping(ctx context.Context) bool {
	return s.driver.VerifyConnectivity(ctx) == nil
}

// ExecuteRead runs a read query inside a managed session and returns all rows
func (s *Store) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	records, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		return nil, MapError(err)
	}
	return records.([]*neo4j.Record), nil
}

// ExecuteWrite runs a write query inside a managed session and returns all rows
func (s *Store) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	records, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		return nil, MapError(err)
	}
	return records.([]*neo4j.Record), nil
}

// WriteTx runs work inside a single managed write transaction. Every statement
// issued through the transaction commits or rolls back together.
func (s *Store) WriteTx(ctx context.Context, work func(tx neo4j.ManagedTransaction) error) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return nil, work(tx)
	})
	if err != nil {
		return MapError(err)
	}
	return nil
}

// MapError translates driver failures into the application taxonomy. Errors
// already carrying a kind pass through unchanged. Driver errors may arrive
// wrapped, so classification unwraps the chain rather than asserting on the
// top-level value.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if apperr.KindOf(err) != "" {
		return err
	}
	var ne *neo4j.Neo4jError
	if errors.As(err, &ne) {
		if strings.Contains(ne.Code, "ConstraintValidationFailed") {
			return apperr.New(apperr.KindDuplicateKey, "uniqueness constraint violated", err)
		}
		return err
	}
	for cause := err; cause != nil; cause = errors.Unwrap(cause) {
		if neo4j.IsConnectivityError(cause) {
			return apperr.StoreUnavailable(err)
		}
	}
	return err
}
