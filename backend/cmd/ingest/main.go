package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"docgraph/backend/pkg/config"
	"docgraph/backend/pkg/logger"
)

// Seeds the API with the sample borehole record set, then reads it back
// through the export endpoints. Safe to re-run; duplicates are skipped.

type client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	if err := logger.Init(cfg.Env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting data ingestion", zap.String("target", cfg.APIBaseURL))

	c := &client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}

	if err := c.ingest(); err != nil {
		log.Fatal("Ingestion failed", zap.Error(err))
	}
	if err := c.verify(); err != nil {
		log.Fatal("Verification failed", zap.Error(err))
	}

	log.Info("Data ingestion and verification completed successfully")
}

func (c *client) ingest() error {
	if err := c.post("users/", seedUser); err != nil {
		return fmt.Errorf("user: %w", err)
	}
	if err := c.post("folders/", seedFolder); err != nil {
		return fmt.Errorf("folder: %w", err)
	}
	for _, doc := range seedDocuments {
		if err := c.post("documents/", doc); err != nil {
			return fmt.Errorf("document %s: %w", doc.ID, err)
		}
	}
	if err := c.post("file-metadata/", seedFileMetadata); err != nil {
		return fmt.Errorf("file metadata: %w", err)
	}
	if err := c.post("versions/", seedVersion); err != nil {
		return fmt.Errorf("version: %w", err)
	}
	if err := c.post("sessions/", seedSession); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	for _, fixture := range seedClassifiers {
		if err := c.post("classifiers/", fixture.Classifier); err != nil {
			return fmt.Errorf("classifier %s: %w", fixture.Classifier.ID, err)
		}
		for _, row := range fixture.Data {
			if err := c.post("classifier-data/", row); err != nil {
				return fmt.Errorf("classifier data %s/%s: %w", row.ClassifierID, row.Code, err)
			}
		}
	}
	for _, enricher := range seedEnrichers {
		if err := c.post("enrichers/", enricher); err != nil {
			return fmt.Errorf("enricher %s: %w", enricher.Name, err)
		}
	}
	for _, bgs := range seedBGSClassifications {
		if err := c.post("bgs/classifications/", bgs); err != nil {
			return fmt.Errorf("bgs classification %s: %w", bgs.DocumentID, err)
		}
	}
	for _, edit := range seedUserEdits {
		if err := c.post("user-edits/", edit); err != nil {
			return fmt.Errorf("user edit %s/%s: %w", edit.DocumentID, edit.Field, err)
		}
	}
	return nil
}

// verify reads back every export endpoint and logs the payloads
func (c *client) verify() error {
	endpoints := []string{
		"export/ai-edits",
		"export/document/01FCBACZIFWRL22JSIMJAYZJ5UAYIDY36K",
		"export/document/01FCBACZIFWRL22JSIMJAYZJ5UAYIDY36K/metadata",
		"export/session/soft-mails-cry",
		"export/user-edits",
		"export/session-standard",
	}
	for _, endpoint := range endpoints {
		body, err := c.get(endpoint)
		if err != nil {
			return fmt.Errorf("%s: %w", endpoint, err)
		}
		c.log.Info("Export verified",
			zap.String("endpoint", endpoint),
			zap.Int("bytes", len(body)),
		)
	}
	return nil
}

// post sends one JSON payload; a duplicate response is logged and treated
// as success so the run is idempotent.
func (c *client) post(endpoint string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := c.http.Post(c.baseURL+"/"+endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode < 300:
		c.log.Info("Ingested", zap.String("endpoint", endpoint))
		return nil
	case resp.StatusCode == http.StatusBadRequest && strings.Contains(string(respBody), "already exists"):
		c.log.Warn("Already exists, skipping", zap.String("endpoint", endpoint))
		return nil
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, respBody)
	}
}

func (c *client) get(endpoint string) ([]byte, error) {
	resp, err := c.http.Get(c.baseURL + "/" + endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	return body, nil
}
