package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"docgraph/backend/internal/store"
	"docgraph/backend/pkg/config"
	"docgraph/backend/pkg/logger"
)

// Wipes every node and relationship from the graph, then reapplies the
// schema. Intended for local development and test resets only.
func main() {
	yes := flag.Bool("yes", false, "Confirm deletion of all graph data")
	flag.Parse()

	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()

	if !*yes {
		log.Fatal("Refusing to wipe the graph without -yes")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()
	st, err := store.New(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to Neo4j", zap.Error(err))
	}
	defer st.Close(context.Background())

	log.Info("Deleting all nodes and relationships...")
	if err := st.WriteTx(ctx, func(tx neo4j.ManagedTransaction) error {
		_, err := tx.Run(ctx, "MATCH (n) DETACH DELETE n", nil)
		return err
	}); err != nil {
		log.Fatal("Failed to wipe graph", zap.Error(err))
	}

	if err := st.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to reapply graph schema", zap.Error(err))
	}

	log.Info("Graph reset complete")
}
