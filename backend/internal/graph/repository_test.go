package graph

import (
	"context"
	"fmt"
	"testing"
	"time"

	"docgraph/backend/internal/model"
	"docgraph/backend/internal/store"
	"docgraph/backend/pkg/apperr"
	"docgraph/backend/pkg/config"
)

// These tests require a running Neo4j instance.
// Set NEO4J_URI, NEO4J_USERNAME, NEO4J_PASSWORD environment variables.

func createTestStore(ctx context.Context) (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return store.New(ctx, cfg)
}

func testID(prefix string) string {
	return prefix + "-" + time.Now().Format("20060102150405.000000000")
}

// cleanup removes every node created by a test run, keyed by id
func cleanup(ctx context.Context, st *store.Store, label, key string, ids ...string) {
	for _, id := range ids {
		query := fmt.Sprintf("MATCH (n:%s {%s: $id}) DETACH DELETE n", label, key)
		_, _ = st.ExecuteWrite(ctx, query, map[string]any{"id": id})
	}
}

func seedDocumentGraph(ctx context.Context, t *testing.T, repo *Repository, userID, folderID, docID string) {
	t.Helper()

	err := repo.CreateUser(ctx, &model.User{ID: userID, Email: userID + "@example.com", DisplayName: "Test User"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	err = repo.CreateFolder(ctx, &model.Folder{
		ID: folderID, Name: "Test Folder", Path: "/drives/test/" + folderID,
		DriveType: "documentLibrary", DriveID: "drive-test", SiteID: "site-test",
	})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	err = repo.CreateDocument(ctx, &model.DocumentCreate{
		ID: docID, Name: "test.pdf", Label: "test.pdf", Size: 1024,
		Source: "sharepoint", Type: "application/pdf",
		CreatedDateTime: "2024-12-17T10:31:25Z", LastModifiedDateTime: "2024-12-17T10:31:25Z",
		WebURL: "https://example.com/" + docID, DownloadURL: "https://example.com/dl/" + docID,
		DriveID: "drive-test", SiteID: "site-test", Status: "N/A",
		ParentReferenceID: folderID, CreatedBy: userID, LastModifiedBy: userID,
	})
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
}

func TestRepository_CreateAndGetUser(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	st, err := createTestStore(ctx)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close(ctx)

	repo := NewRepository(st)
	userID := testID("test-user")
	defer cleanup(ctx, st, "User", "id", userID)

	user := &model.User{ID: userID, Email: "test@example.com", DisplayName: "Test User"}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := repo.GetUser(ctx, userID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Email != "test@example.com" || got.DisplayName != "Test User" {
		t.Errorf("GetUser returned %+v, want %+v", got, user)
	}

	// second create with the same id must fail as a duplicate
	err = repo.CreateUser(ctx, user)
	if !apperr.IsDuplicateKey(err) {
		t.Errorf("Expected duplicate key error, got %v", err)
	}

	// a rejected duplicate must not overwrite the stored entity
	altered := &model.User{ID: userID, Email: "other@example.com", DisplayName: "Someone Else"}
	if err := repo.CreateUser(ctx, altered); !apperr.IsDuplicateKey(err) {
		t.Errorf("Expected duplicate key error for altered payload, got %v", err)
	}
	got, err = repo.GetUser(ctx, userID)
	if err != nil {
		t.Fatalf("GetUser after duplicate failed: %v", err)
	}
	if got.Email != "test@example.com" || got.DisplayName != "Test User" {
		t.Errorf("Duplicate create modified stored user: %+v", got)
	}
}

func TestRepository_GetUser_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	st, err := createTestStore(ctx)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close(ctx)

	repo := NewRepository(st)
	_, err = repo.GetUser(ctx, "no-such-user")
	if !apperr.IsNotFound(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestRepository_DocumentLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	st, err := createTestStore(ctx)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close(ctx)

	repo := NewRepository(st)
	userID := testID("test-user")
	folderID := testID("test-folder")
	docID := testID("test-doc")
	defer cleanup(ctx, st, "User", "id", userID)
	defer cleanup(ctx, st, "Folder", "id", folderID)
	defer cleanup(ctx, st, "Document", "id", docID)

	seedDocumentGraph(ctx, t, repo, userID, folderID, docID)

	got, err := repo.GetDocument(ctx, docID)
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got.CreatedBy == nil || *got.CreatedBy != userID {
		t.Errorf("Expected createdBy %s, got %v", userID, got.CreatedBy)
	}
	if got.ParentReferenceID == nil || *got.ParentReferenceID != folderID {
		t.Errorf("Expected parentReference_id %s, got %v", folderID, got.ParentReferenceID)
	}

	newName := "renamed.pdf"
	if err := repo.UpdateDocument(ctx, docID, &model.DocumentUpdate{Name: &newName}); err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	got, err = repo.GetDocument(ctx, docID)
	if err != nil {
		t.Fatalf("GetDocument after update failed: %v", err)
	}
	if got.Name != "renamed.pdf" {
		t.Errorf("Expected updated name, got %s", got.Name)
	}

	if err := repo.DeleteDocument(ctx, docID); err != nil {
		t.Fatalf("DeleteDocument failed: %v", err)
	}
	if _, err := repo.GetDocument(ctx, docID); !apperr.IsNotFound(err) {
		t.Errorf("Expected not found after delete, got %v", err)
	}

	// deleting a document must not delete its neighbors
	if _, err := repo.GetUser(ctx, userID); err != nil {
		t.Errorf("User was removed by document delete: %v", err)
	}
	if _, err := repo.GetFolder(ctx, folderID); err != nil {
		t.Errorf("Folder was removed by document delete: %v", err)
	}
}

func TestRepository_UpdateDocument_EmptyPatch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	st, err := createTestStore(ctx)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close(ctx)

	repo := NewRepository(st)
	err = repo.UpdateDocument(ctx, "any-doc", &model.DocumentUpdate{})
	if !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Errorf("Expected invalid argument for empty patch, got %v", err)
	}
}

func TestRepository_CreateDocument_MissingReferences(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	st, err := createTestStore(ctx)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close(ctx)

	repo := NewRepository(st)
	docID := testID("test-doc")
	defer cleanup(ctx, st, "Document", "id", docID)

	err = repo.CreateDocument(ctx, &model.DocumentCreate{
		ID: docID, Name: "orphan.pdf", Label: "orphan.pdf",
		Source: "sharepoint", Type: "application/pdf",
		CreatedDateTime: "2024-12-17T10:31:25Z", LastModifiedDateTime: "2024-12-17T10:31:25Z",
		WebURL: "https://example.com/orphan", DownloadURL: "https://example.com/dl/orphan",
		DriveID: "drive-test", SiteID: "site-test", Status: "N/A",
		ParentReferenceID: "no-such-folder", CreatedBy: "no-such-user", LastModifiedBy: "no-such-user",
	})
	if !apperr.IsKind(err, apperr.KindReferentialPrecondition) {
		t.Fatalf("Expected referential precondition error, got %v", err)
	}

	// the failed create must not leave a document node behind
	if _, err := repo.GetDocument(ctx, docID); !apperr.IsNotFound(err) {
		t.Errorf("Orphan document node left behind after failed create: %v", err)
	}
}

func TestRepository_FileMetadataGuards(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	st, err := createTestStore(ctx)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close(ctx)

	repo := NewRepository(st)
	userID := testID("test-user")
	folderID := testID("test-folder")
	docID := testID("test-doc")
	defer cleanup(ctx, st, "User", "id", userID)
	defer cleanup(ctx, st, "Folder", "id", folderID)
	defer cleanup(ctx, st, "Document", "id", docID)
	defer cleanup(ctx, st, "FileMetadata", "documentId", docID)

	seedDocumentGraph(ctx, t, repo, userID, folderID, docID)

	meta := &model.FileMetadata{
		DocumentID: docID, MimeType: "application/pdf", QuickXorHash: "hash",
		SharedScope: "users", CreatedDateTime: "2024-12-17T10:31:25Z",
		LastModifiedDateTime: "2024-12-17T10:31:25Z",
	}
	if err := repo.CreateFileMetadata(ctx, meta); err != nil {
		t.Fatalf("CreateFileMetadata failed: %v", err)
	}

	// one metadata node per document
	err = repo.CreateFileMetadata(ctx, meta)
	if !apperr.IsDuplicateKey(err) {
		t.Errorf("Expected duplicate key on second metadata, got %v", err)
	}

	// attaching to a missing document is a precondition failure
	orphan := &model.FileMetadata{
		DocumentID: "no-such-doc", MimeType: "application/pdf", QuickXorHash: "hash",
		SharedScope: "users", CreatedDateTime: "2024-12-17T10:31:25Z",
		LastModifiedDateTime: "2024-12-17T10:31:25Z",
	}
	err = repo.CreateFileMetadata(ctx, orphan)
	if !apperr.IsKind(err, apperr.KindReferentialPrecondition) {
		t.Errorf("Expected referential precondition error, got %v", err)
	}
}

func TestRepository_Compose_MissingRelationsDegrade(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	st, err := createTestStore(ctx)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close(ctx)

	repo := NewRepository(st)
	userID := testID("test-user")
	folderID := testID("test-folder")
	docID := testID("test-doc")
	defer cleanup(ctx, st, "User", "id", userID)
	defer cleanup(ctx, st, "Folder", "id", folderID)
	defer cleanup(ctx, st, "Document", "id", docID)

	seedDocumentGraph(ctx, t, repo, userID, folderID, docID)

	export, err := repo.Compose(ctx, docID)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if export.CreatedBy == nil || export.CreatedBy.ID != userID {
		t.Errorf("Expected composed createdBy %s, got %+v", userID, export.CreatedBy)
	}
	if export.ParentReference == nil || export.ParentReference.ID != folderID {
		t.Errorf("Expected composed parentReference %s, got %+v", folderID, export.ParentReference)
	}

	// no metadata or version nodes exist, so those facets must be null
	if export.File != nil || export.FileSystemInfo != nil || export.Shared != nil {
		t.Errorf("Expected null file facets, got file=%+v fsi=%+v shared=%+v", export.File, export.FileSystemInfo, export.Shared)
	}
	if export.ETag != nil || export.CTag != nil {
		t.Errorf("Expected null eTag/cTag, got %v/%v", export.ETag, export.CTag)
	}
}

func TestRepository_DecomposeComposeRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	st, err := createTestStore(ctx)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close(ctx)

	repo := NewRepository(st)
	payload := testAggregatePayload()
	payload.ID = testID("test-doc")
	payload.CreatedByID = testID("test-user")
	payload.LastModifiedByID = payload.CreatedByID
	payload.ParentReferenceID = testID("test-folder")
	payload.SessionID = testID("test-session")

	defer cleanup(ctx, st, "User", "id", payload.CreatedByID)
	defer cleanup(ctx, st, "Folder", "id", payload.ParentReferenceID)
	defer cleanup(ctx, st, "Session", "sessionId", payload.SessionID)
	defer cleanup(ctx, st, "Document", "id", payload.ID)
	defer cleanup(ctx, st, "FileMetadata", "documentId", payload.ID)
	defer cleanup(ctx, st, "Version", "documentId", payload.ID)

	if err := repo.Decompose(ctx, payload); err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}

	export, err := repo.Compose(ctx, payload.ID)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if export.ID != payload.ID || export.Name != payload.Name {
		t.Errorf("Composed identity mismatch: got %s/%s", export.ID, export.Name)
	}
	if export.DownloadURL != payload.DownloadURL {
		t.Errorf("Expected download URL %s, got %s", payload.DownloadURL, export.DownloadURL)
	}
	if export.CreatedBy == nil || export.CreatedBy.ID != payload.CreatedByID {
		t.Errorf("Expected composed createdBy %s, got %+v", payload.CreatedByID, export.CreatedBy)
	}
	if export.File == nil || export.File.Hashes.QuickXorHash != payload.FileQuickXorHash {
		t.Errorf("Expected composed file facet, got %+v", export.File)
	}
	if export.ETag == nil || *export.ETag != payload.VersionETag {
		t.Errorf("Expected composed eTag %s, got %v", payload.VersionETag, export.ETag)
	}

	// replaying the same aggregate must collide on the document id
	err = repo.Decompose(ctx, payload)
	if !apperr.IsDuplicateKey(err) {
		t.Errorf("Expected duplicate key on replay, got %v", err)
	}
}

func TestRepository_ListDocuments_Bounds(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	st, err := createTestStore(ctx)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close(ctx)

	repo := NewRepository(st)

	if _, err := repo.ListDocuments(ctx, 0, 0); !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Errorf("Expected invalid argument for limit 0, got %v", err)
	}
	if _, err := repo.ListDocuments(ctx, 101, 0); !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Errorf("Expected invalid argument for limit 101, got %v", err)
	}
	if _, err := repo.ListDocuments(ctx, 10, -1); !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Errorf("Expected invalid argument for negative offset, got %v", err)
	}

	docs, err := repo.ListDocuments(ctx, 5, 0)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) > 5 {
		t.Errorf("Expected at most 5 documents, got %d", len(docs))
	}
}

func TestRepository_ListDocuments_StableOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	st, err := createTestStore(ctx)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close(ctx)

	repo := NewRepository(st)
	userID := testID("test-user")
	folderID := testID("test-folder")
	docIDs := []string{testID("test-doc-a"), testID("test-doc-b"), testID("test-doc-c")}
	defer cleanup(ctx, st, "User", "id", userID)
	defer cleanup(ctx, st, "Folder", "id", folderID)
	defer cleanup(ctx, st, "Document", "id", docIDs...)

	// three documents sharing one createdDateTime force the id tie-break
	seedDocumentGraph(ctx, t, repo, userID, folderID, docIDs[0])
	for _, id := range docIDs[1:] {
		err := repo.CreateDocument(ctx, &model.DocumentCreate{
			ID: id, Name: "test.pdf", Label: "test.pdf", Size: 1024,
			Source: "sharepoint", Type: "application/pdf",
			CreatedDateTime: "2024-12-17T10:31:25Z", LastModifiedDateTime: "2024-12-17T10:31:25Z",
			WebURL: "https://example.com/" + id, DownloadURL: "https://example.com/dl/" + id,
			DriveID: "drive-test", SiteID: "site-test", Status: "N/A",
			ParentReferenceID: folderID, CreatedBy: userID, LastModifiedBy: userID,
		})
		if err != nil {
			t.Fatalf("CreateDocument %s failed: %v", id, err)
		}
	}

	listIDs := func() []string {
		docs, err := repo.ListDocuments(ctx, 100, 0)
		if err != nil {
			t.Fatalf("ListDocuments failed: %v", err)
		}
		ids := make([]string, len(docs))
		for i, d := range docs {
			ids[i] = d.ID
		}
		return ids
	}

	first := listIDs()
	second := listIDs()

	if len(first) != len(second) {
		t.Fatalf("List length changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("List order changed between calls at %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestRepository_UserEditCompositeKey(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	st, err := createTestStore(ctx)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close(ctx)

	repo := NewRepository(st)
	userID := testID("test-user")
	folderID := testID("test-folder")
	docID := testID("test-doc")
	defer cleanup(ctx, st, "User", "id", userID)
	defer cleanup(ctx, st, "Folder", "id", folderID)
	defer cleanup(ctx, st, "Document", "id", docID)
	defer cleanup(ctx, st, "UserEdit", "documentId", docID)

	seedDocumentGraph(ctx, t, repo, userID, folderID, docID)

	edit := &model.UserEdit{
		DocumentID: docID, Field: "ISO2", OriginalValue: "unknown",
		EditedValue: "BGS", EditedBy: userID, EditedAt: "2024-12-17T10:33:00Z",
	}
	if err := repo.CreateUserEdit(ctx, edit); err != nil {
		t.Fatalf("CreateUserEdit failed: %v", err)
	}

	// same document and field collides
	err = repo.CreateUserEdit(ctx, edit)
	if !apperr.IsDuplicateKey(err) {
		t.Errorf("Expected duplicate key for same field, got %v", err)
	}

	// a different field on the same document is a new edit
	other := &model.UserEdit{
		DocumentID: docID, Field: "ISO4", OriginalValue: "unknown",
		EditedValue: "SP", EditedBy: userID, EditedAt: "2024-12-17T10:33:00Z",
	}
	if err := repo.CreateUserEdit(ctx, other); err != nil {
		t.Errorf("CreateUserEdit for second field failed: %v", err)
	}
}
