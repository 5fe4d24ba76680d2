package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgraph/backend/internal/model"
	"docgraph/backend/pkg/apperr"
)

// stubService satisfies Service with canned behavior; tests override the
// function fields they care about.
type stubService struct {
	createUser    func(ctx context.Context, user *model.User) error
	getUser       func(ctx context.Context, id string) (*model.User, error)
	listUsers     func(ctx context.Context, limit, offset int) ([]model.User, error)
	getDocument   func(ctx context.Context, id string) (*model.Document, error)
	compose       func(ctx context.Context, documentID string) (*model.DocumentExport, error)
	decompose     func(ctx context.Context, payload *model.AggregatePayload) error
	exportUserEd  func(ctx context.Context) ([]model.UserEdit, error)
	exportAIEdits func(ctx context.Context) ([]model.AIEdit, error)
}

func (s *stubService) CreateUser(ctx context.Context, user *model.User) error {
	if s.createUser != nil {
		return s.createUser(ctx, user)
	}
	return nil
}

func (s *stubService) GetUser(ctx context.Context, id string) (*model.User, error) {
	if s.getUser != nil {
		return s.getUser(ctx, id)
	}
	return &model.User{ID: id}, nil
}

func (s *stubService) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	if s.listUsers != nil {
		return s.listUsers(ctx, limit, offset)
	}
	return []model.User{}, nil
}

func (s *stubService) CreateFolder(ctx context.Context, folder *model.Folder) error { return nil }
func (s *stubService) GetFolder(ctx context.Context, id string) (*model.Folder, error) {
	return &model.Folder{ID: id}, nil
}
func (s *stubService) ListFolders(ctx context.Context, limit, offset int) ([]model.Folder, error) {
	return []model.Folder{}, nil
}

func (s *stubService) CreateDocument(ctx context.Context, doc *model.DocumentCreate) error {
	return nil
}

func (s *stubService) GetDocument(ctx context.Context, id string) (*model.Document, error) {
	if s.getDocument != nil {
		return s.getDocument(ctx, id)
	}
	return &model.Document{ID: id}, nil
}

func (s *stubService) ListDocuments(ctx context.Context, limit, offset int) ([]model.Document, error) {
	return []model.Document{}, nil
}

func (s *stubService) UpdateDocument(ctx context.Context, id string, update *model.DocumentUpdate) error {
	return nil
}
func (s *stubService) DeleteDocument(ctx context.Context, id string) error { return nil }

func (s *stubService) CreateFileMetadata(ctx context.Context, meta *model.FileMetadata) error {
	return nil
}
func (s *stubService) GetFileMetadata(ctx context.Context, documentID string) (*model.FileMetadata, error) {
	return &model.FileMetadata{DocumentID: documentID}, nil
}
func (s *stubService) ListFileMetadata(ctx context.Context, limit, offset int) ([]model.FileMetadata, error) {
	return []model.FileMetadata{}, nil
}

func (s *stubService) CreateVersion(ctx context.Context, version *model.Version) error { return nil }
func (s *stubService) GetVersion(ctx context.Context, documentID string) (*model.Version, error) {
	return &model.Version{DocumentID: documentID}, nil
}
func (s *stubService) ListVersions(ctx context.Context, limit, offset int) ([]model.Version, error) {
	return []model.Version{}, nil
}

func (s *stubService) CreateSession(ctx context.Context, session *model.Session) error { return nil }
func (s *stubService) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	return &model.Session{SessionID: sessionID}, nil
}
func (s *stubService) ListSessions(ctx context.Context, limit, offset int) ([]model.Session, error) {
	return []model.Session{}, nil
}

func (s *stubService) CreateClassifier(ctx context.Context, classifier *model.Classifier) error {
	return nil
}
func (s *stubService) GetClassifier(ctx context.Context, id string) (*model.ClassifierExport, error) {
	return &model.ClassifierExport{}, nil
}
func (s *stubService) ListClassifiers(ctx context.Context, limit, offset int) ([]model.ClassifierExport, error) {
	return []model.ClassifierExport{}, nil
}
func (s *stubService) CreateClassifierData(ctx context.Context, data *model.ClassifierData) error {
	return nil
}
func (s *stubService) ListClassifierData(ctx context.Context, limit, offset int) ([]model.ClassifierData, error) {
	return []model.ClassifierData{}, nil
}

func (s *stubService) CreateEnricher(ctx context.Context, enricher *model.Enricher) error { return nil }
func (s *stubService) GetEnricher(ctx context.Context, name string) (*model.Enricher, error) {
	return &model.Enricher{Name: name}, nil
}
func (s *stubService) ListEnrichers(ctx context.Context, limit, offset int) ([]model.Enricher, error) {
	return []model.Enricher{}, nil
}

func (s *stubService) CreateBGSClassification(ctx context.Context, bgs *model.BGSClassification) error {
	return nil
}
func (s *stubService) GetBGSClassification(ctx context.Context, documentID string) (*model.BGSClassification, error) {
	return &model.BGSClassification{DocumentID: documentID}, nil
}
func (s *stubService) ListBGSClassifications(ctx context.Context, limit, offset int) ([]model.BGSClassification, error) {
	return []model.BGSClassification{}, nil
}

func (s *stubService) CreateUserEdit(ctx context.Context, edit *model.UserEdit) error { return nil }
func (s *stubService) ListUserEdits(ctx context.Context, limit, offset int) ([]model.UserEdit, error) {
	return []model.UserEdit{}, nil
}

func (s *stubService) ExportUserEdits(ctx context.Context) ([]model.UserEdit, error) {
	if s.exportUserEd != nil {
		return s.exportUserEd(ctx)
	}
	return []model.UserEdit{}, nil
}

func (s *stubService) ExportAIEdits(ctx context.Context) ([]model.AIEdit, error) {
	if s.exportAIEdits != nil {
		return s.exportAIEdits(ctx)
	}
	return []model.AIEdit{}, nil
}

func (s *stubService) Compose(ctx context.Context, documentID string) (*model.DocumentExport, error) {
	if s.compose != nil {
		return s.compose(ctx, documentID)
	}
	return &model.DocumentExport{ID: documentID}, nil
}

func (s *stubService) Decompose(ctx context.Context, payload *model.AggregatePayload) error {
	if s.decompose != nil {
		return s.decompose(ctx, payload)
	}
	return nil
}

func (s *stubService) SessionStandard(ctx context.Context) (*model.SessionStandardExport, error) {
	return &model.SessionStandardExport{
		Classifiers: []model.ClassifierExport{},
		Enrichers:   []model.Enricher{},
	}, nil
}

type stubPinger struct {
	up bool
}

func (p *stubPinger) Ping(ctx context.Context) bool { return p.up }

func newTestRouter(svc Service, pinger Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(svc, pinger).Routes(router)
	return router
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubService{}, &stubPinger{up: true})

	w := doJSON(router, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.Equal(t, true, response["database"])
}

func TestHealthEndpoint_DatabaseDown(t *testing.T) {
	router := newTestRouter(&stubService{}, &stubPinger{up: false})

	w := doJSON(router, "GET", "/health", nil)

	// health never errors, it reports
	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["database"])
}

func TestCreateUser(t *testing.T) {
	router := newTestRouter(&stubService{}, &stubPinger{up: true})

	user := model.User{ID: "u1", Email: "u1@example.com", DisplayName: "User One"}
	w := doJSON(router, "POST", "/users/", user)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateUser_MissingFields(t *testing.T) {
	router := newTestRouter(&stubService{}, &stubPinger{up: true})

	w := doJSON(router, "POST", "/users/", map[string]string{"id": "u1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUser_Duplicate(t *testing.T) {
	svc := &stubService{
		createUser: func(ctx context.Context, user *model.User) error {
			return apperr.DuplicateKey("User", user.ID, nil)
		},
	}
	router := newTestRouter(svc, &stubPinger{up: true})

	user := model.User{ID: "u1", Email: "u1@example.com", DisplayName: "User One"}
	w := doJSON(router, "POST", "/users/", user)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "User already exists: u1", response["detail"])
}

func TestGetDocument_NotFound(t *testing.T) {
	svc := &stubService{
		getDocument: func(ctx context.Context, id string) (*model.Document, error) {
			return nil, apperr.NotFound("Document", id)
		},
	}
	router := newTestRouter(svc, &stubPinger{up: true})

	w := doJSON(router, "GET", "/documents/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Document not found: missing", response["detail"])
}

func TestListUsers_InvalidPagination(t *testing.T) {
	router := newTestRouter(&stubService{}, &stubPinger{up: true})

	w := doJSON(router, "GET", "/users/?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, "GET", "/users/?offset=xyz", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUsers_DefaultPagination(t *testing.T) {
	var gotLimit, gotOffset int
	svc := &stubService{
		listUsers: func(ctx context.Context, limit, offset int) ([]model.User, error) {
			gotLimit, gotOffset = limit, offset
			return []model.User{}, nil
		},
	}
	router := newTestRouter(svc, &stubPinger{up: true})

	w := doJSON(router, "GET", "/users/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 0, gotOffset)
}

func TestServiceUnavailable(t *testing.T) {
	svc := &stubService{
		getUser: func(ctx context.Context, id string) (*model.User, error) {
			return nil, apperr.StoreUnavailable(nil)
		},
	}
	router := newTestRouter(svc, &stubPinger{up: false})

	w := doJSON(router, "GET", "/users/u1", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestExportDocument(t *testing.T) {
	svc := &stubService{
		compose: func(ctx context.Context, documentID string) (*model.DocumentExport, error) {
			return &model.DocumentExport{
				ID:          documentID,
				Name:        "borehole.pdf",
				DownloadURL: "https://example.com/dl",
			}, nil
		},
	}
	router := newTestRouter(svc, &stubPinger{up: true})

	w := doJSON(router, "GET", "/export/document/doc-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "doc-1", response["id"])
	assert.Equal(t, "https://example.com/dl", response["@microsoft.graph.downloadUrl"])
}

func TestIngestData(t *testing.T) {
	var got *model.AggregatePayload
	svc := &stubService{
		decompose: func(ctx context.Context, payload *model.AggregatePayload) error {
			got = payload
			return nil
		},
	}
	router := newTestRouter(svc, &stubPinger{up: true})

	payload := map[string]any{
		"id": "doc-1", "name": "borehole.pdf", "label": "borehole.pdf",
		"source": "sharepoint", "type": "application/pdf",
		"createdDateTime": "2024-12-17T10:31:25Z", "lastModifiedDateTime": "2024-12-17T10:31:25Z",
		"webUrl": "https://example.com/doc-1", "downloadUrl": "https://example.com/dl/doc-1",
		"driveId": "drive-1", "siteId": "site-1", "status": "N/A",
		"createdBy_id": "u1", "createdBy_email": "u1@example.com", "createdBy_displayName": "User One",
		"lastModifiedBy_id": "u1", "lastModifiedBy_email": "u1@example.com", "lastModifiedBy_displayName": "User One",
		"parentReference_id": "f1", "parentReference_name": "Folder", "parentReference_path": "/drives/d/f1",
		"parentReference_driveType": "documentLibrary", "parentReference_driveId": "drive-1", "parentReference_siteId": "site-1",
		"file_mimeType": "application/pdf", "file_quickXorHash": "hash", "file_sharedScope": "users",
		"file_createdDateTime": "2024-12-17T10:31:25Z", "file_lastModifiedDateTime": "2024-12-17T10:31:25Z",
		"version_eTag": "e", "version_cTag": "c", "version_timestamp": "2024-12-17T10:31:25Z",
		"sessionId": "s1", "sessionName": "Session", "session_createdAt": "2024-11-09T15:28:55.609Z",
		"session_createdBy": "User One", "session_status": "draft",
	}
	w := doJSON(router, "POST", "/data", payload)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "doc-1", got.ID)
	assert.Equal(t, "s1", got.SessionID)
}

func TestIngestData_MissingFields(t *testing.T) {
	router := newTestRouter(&stubService{}, &stubPinger{up: true})

	w := doJSON(router, "POST", "/data", map[string]string{"id": "doc-1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportAIEdits_Empty(t *testing.T) {
	router := newTestRouter(&stubService{}, &stubPinger{up: true})

	w := doJSON(router, "GET", "/export/ai-edits", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestExportSessionStandard(t *testing.T) {
	router := newTestRouter(&stubService{}, &stubPinger{up: true})

	w := doJSON(router, "GET", "/export/session-standard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "classifiers")
	assert.Contains(t, response, "enrichers")
}
