package store

import (
	"context"

	"go.uber.org/zap"
)

// schemaStatements are idempotent DDL run at startup. Uniqueness constraints
// back the duplicate-key semantics of every create path.
var schemaStatements = []string{
	`CREATE CONSTRAINT user_id_unique IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE`,
	`CREATE CONSTRAINT folder_id_unique IF NOT EXISTS FOR (f:Folder) REQUIRE f.id IS UNIQUE`,
	`CREATE CONSTRAINT document_id_unique IF NOT EXISTS FOR (d:Document) REQUIRE d.id IS UNIQUE`,
	`CREATE CONSTRAINT session_id_unique IF NOT EXISTS FOR (s:Session) REQUIRE s.sessionId IS UNIQUE`,
	`CREATE CONSTRAINT classifier_id_unique IF NOT EXISTS FOR (c:Classifier) REQUIRE c.id IS UNIQUE`,
	`CREATE CONSTRAINT enricher_name_unique IF NOT EXISTS FOR (e:Enricher) REQUIRE e.name IS UNIQUE`,
	`CREATE INDEX document_name_index IF NOT EXISTS FOR (d:Document) ON (d.name)`,
	`CREATE INDEX document_created_index IF NOT EXISTS FOR (d:Document) ON (d.createdDateTime)`,
	`CREATE FULLTEXT INDEX document_search IF NOT EXISTS FOR (d:Document) ON EACH [d.name, d.description]`,
	`CREATE FULLTEXT INDEX organisation_search IF NOT EXISTS FOR (o:Organisation) ON EACH [o.name, o.purpose]`,
	`CREATE FULLTEXT INDEX address_search IF NOT EXISTS FOR (a:Address) ON EACH [a.fullAddress]`,
}

// EnsureSchema creates the uniqueness constraints and indexes. Safe to run on
// every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.ExecuteWrite(ctx, stmt, nil); err != nil {
			return err
		}
	}
	s.logger.Info("Schema constraints and indexes ensured",
		zap.Int("statements", len(schemaStatements)),
	)
	return nil
}
