package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docgraph/backend/internal/model"
	"docgraph/backend/pkg/logger"
)

// Service is the repository surface the HTTP layer depends on
type Service interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]model.User, error)

	CreateFolder(ctx context.Context, folder *model.Folder) error
	GetFolder(ctx context.Context, id string) (*model.Folder, error)
	ListFolders(ctx context.Context, limit, offset int) ([]model.Folder, error)

	CreateDocument(ctx context.Context, doc *model.DocumentCreate) error
	GetDocument(ctx context.Context, id string) (*model.Document, error)
	ListDocuments(ctx context.Context, limit, offset int) ([]model.Document, error)
	UpdateDocument(ctx context.Context, id string, update *model.DocumentUpdate) error
	DeleteDocument(ctx context.Context, id string) error

	CreateFileMetadata(ctx context.Context, meta *model.FileMetadata) error
	GetFileMetadata(ctx context.Context, documentID string) (*model.FileMetadata, error)
	ListFileMetadata(ctx context.Context, limit, offset int) ([]model.FileMetadata, error)

	CreateVersion(ctx context.Context, version *model.Version) error
	GetVersion(ctx context.Context, documentID string) (*model.Version, error)
	ListVersions(ctx context.Context, limit, offset int) ([]model.Version, error)

	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	ListSessions(ctx context.Context, limit, offset int) ([]model.Session, error)

	CreateClassifier(ctx context.Context, classifier *model.Classifier) error
	GetClassifier(ctx context.Context, id string) (*model.ClassifierExport, error)
	ListClassifiers(ctx context.Context, limit, offset int) ([]model.ClassifierExport, error)
	CreateClassifierData(ctx context.Context, data *model.ClassifierData) error
	ListClassifierData(ctx context.Context, limit, offset int) ([]model.ClassifierData, error)

	CreateEnricher(ctx context.Context, enricher *model.Enricher) error
	GetEnricher(ctx context.Context, name string) (*model.Enricher, error)
	ListEnrichers(ctx context.Context, limit, offset int) ([]model.Enricher, error)

	CreateBGSClassification(ctx context.Context, bgs *model.BGSClassification) error
	GetBGSClassification(ctx context.Context, documentID string) (*model.BGSClassification, error)
	ListBGSClassifications(ctx context.Context, limit, offset int) ([]model.BGSClassification, error)

	CreateUserEdit(ctx context.Context, edit *model.UserEdit) error
	ListUserEdits(ctx context.Context, limit, offset int) ([]model.UserEdit, error)
	ExportUserEdits(ctx context.Context) ([]model.UserEdit, error)
	ExportAIEdits(ctx context.Context) ([]model.AIEdit, error)

	Compose(ctx context.Context, documentID string) (*model.DocumentExport, error)
	Decompose(ctx context.Context, payload *model.AggregatePayload) error
	SessionStandard(ctx context.Context) (*model.SessionStandardExport, error)
}

// Pinger reports backend reachability for the health probe
type Pinger interface {
	Ping(ctx context.Context) bool
}

// Handler wires the repository into gin routes
type Handler struct {
	svc    Service
	pinger Pinger
	logger *zap.Logger
}

// NewHandler creates the handler over a service and a health pinger
func NewHandler(svc Service, pinger Pinger) *Handler {
	return &Handler{
		svc:    svc,
		pinger: pinger,
		logger: logger.Get(),
	}
}

// Routes registers every endpoint on the given router
func (h *Handler) Routes(router *gin.Engine) {
	router.GET("/health", h.health)

	router.POST("/users/", h.createUser)
	router.GET("/users/:id", h.getUser)
	router.GET("/users/", h.listUsers)

	router.POST("/folders/", h.createFolder)
	router.GET("/folders/:id", h.getFolder)
	router.GET("/folders/", h.listFolders)

	router.POST("/documents/", h.createDocument)
	router.GET("/documents/:id", h.getDocument)
	router.GET("/documents/", h.listDocuments)
	router.PUT("/documents/:id", h.updateDocument)
	router.DELETE("/documents/:id", h.deleteDocument)

	router.POST("/file-metadata/", h.createFileMetadata)
	router.GET("/file-metadata/:documentId", h.getFileMetadata)
	router.GET("/file-metadata/", h.listFileMetadata)

	router.POST("/versions/", h.createVersion)
	router.GET("/versions/:documentId", h.getVersion)
	router.GET("/versions/", h.listVersions)

	router.POST("/sessions/", h.createSession)
	router.GET("/sessions/:id", h.getSession)
	router.GET("/sessions/", h.listSessions)

	router.POST("/classifiers/", h.createClassifier)
	router.GET("/classifiers/:id", h.getClassifier)
	router.GET("/classifiers/", h.listClassifiers)

	router.POST("/classifier-data/", h.createClassifierData)
	router.GET("/classifier-data/", h.listClassifierData)

	router.POST("/enrichers/", h.createEnricher)
	router.GET("/enrichers/:name", h.getEnricher)
	router.GET("/enrichers/", h.listEnrichers)

	router.POST("/bgs/classifications/", h.createBGSClassification)
	router.GET("/bgs/classifications/:documentId", h.getBGSClassification)
	router.GET("/bgs/classifications/", h.listBGSClassifications)

	router.POST("/user-edits/", h.createUserEdit)
	router.GET("/user-edits/", h.listUserEdits)

	router.GET("/export/document/:id", h.exportDocument)
	router.GET("/export/document/:id/metadata", h.exportDocumentMetadata)
	router.GET("/export/session/:id", h.exportSession)
	router.GET("/export/session-standard", h.exportSessionStandard)
	router.GET("/export/user-edits", h.exportUserEdits)
	router.GET("/export/ai-edits", h.exportAIEdits)

	router.POST("/data", h.ingestData)
}
