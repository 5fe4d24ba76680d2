package model

// Entity shapes for the document graph. One tagged struct per node kind;
// required/optional is expressed through binding tags and pointer fields,
// checked at the HTTP boundary.

// User is a SharePoint identity referenced by documents and edits
type User struct {
	ID          string `json:"id" binding:"required"`
	Email       string `json:"email" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
}

// Folder is the drive location a document is stored in
type Folder struct {
	ID        string `json:"id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Path      string `json:"path" binding:"required"`
	DriveType string `json:"driveType" binding:"required"`
	DriveID   string `json:"driveId" binding:"required"`
	SiteID    string `json:"siteId" binding:"required"`
}

// DocumentCreate is the inbound document payload. The three reference ids
// must name existing nodes.
type DocumentCreate struct {
	ID                   string  `json:"id" binding:"required"`
	Name                 string  `json:"name" binding:"required"`
	Label                string  `json:"label" binding:"required"`
	Size                 int64   `json:"size"`
	FileName             *string `json:"file_name"`
	Source               string  `json:"source" binding:"required"`
	Type                 string  `json:"type" binding:"required"`
	CreatedDateTime      string  `json:"createdDateTime" binding:"required"`
	LastModifiedDateTime string  `json:"lastModifiedDateTime" binding:"required"`
	WebURL               string  `json:"webUrl" binding:"required"`
	DownloadURL          string  `json:"downloadUrl" binding:"required"`
	DriveID              string  `json:"driveId" binding:"required"`
	SiteID               string  `json:"siteId" binding:"required"`
	Status               string  `json:"status" binding:"required"`
	Description          *string `json:"description"`
	ParentReferenceID    string  `json:"parentReference_id" binding:"required"`
	CreatedBy            string  `json:"createdBy" binding:"required"`
	LastModifiedBy       string  `json:"lastModifiedBy" binding:"required"`
}

// Document is the stored node plus its resolved reference ids. The reference
// fields are nil when the relationship target is absent.
type Document struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Label                string  `json:"label"`
	Size                 int64   `json:"size"`
	FileName             *string `json:"file_name"`
	Source               string  `json:"source"`
	Type                 string  `json:"type"`
	CreatedDateTime      string  `json:"createdDateTime"`
	LastModifiedDateTime string  `json:"lastModifiedDateTime"`
	WebURL               string  `json:"webUrl"`
	DownloadURL          string  `json:"downloadUrl"`
	DriveID              string  `json:"driveId"`
	SiteID               string  `json:"siteId"`
	Status               string  `json:"status"`
	Description          *string `json:"description"`
	ParentReferenceID    *string `json:"parentReference_id"`
	CreatedBy            *string `json:"createdBy"`
	LastModifiedBy       *string `json:"lastModifiedBy"`
}

// DocumentUpdate carries a partial property merge; nil fields are untouched.
// The id is immutable and comes from the path.
type DocumentUpdate struct {
	Name                 *string `json:"name"`
	Label                *string `json:"label"`
	Size                 *int64  `json:"size"`
	FileName             *string `json:"file_name"`
	Source               *string `json:"source"`
	Type                 *string `json:"type"`
	CreatedDateTime      *string `json:"createdDateTime"`
	LastModifiedDateTime *string `json:"lastModifiedDateTime"`
	WebURL               *string `json:"webUrl"`
	DownloadURL          *string `json:"downloadUrl"`
	DriveID              *string `json:"driveId"`
	SiteID               *string `json:"siteId"`
	Status               *string `json:"status"`
	Description          *string `json:"description"`
}

// FileMetadata is 1:1 with a document, joined by HAS_METADATA
type FileMetadata struct {
	DocumentID           string `json:"documentId" binding:"required"`
	MimeType             string `json:"mimeType" binding:"required"`
	QuickXorHash         string `json:"quickXorHash" binding:"required"`
	SharedScope          string `json:"sharedScope" binding:"required"`
	CreatedDateTime      string `json:"createdDateTime" binding:"required"`
	LastModifiedDateTime string `json:"lastModifiedDateTime" binding:"required"`
}

// Version is 1:1 with a document, joined by HAS_VERSION
type Version struct {
	DocumentID    string `json:"documentId" binding:"required"`
	ETag          string `json:"eTag" binding:"required"`
	CTag          string `json:"cTag" binding:"required"`
	Timestamp     string `json:"timestamp" binding:"required"`
	VersionNumber int64  `json:"versionNumber" binding:"required"`
}

// Session groups documents processed together
type Session struct {
	SessionID   string  `json:"sessionId" binding:"required"`
	SessionName string  `json:"sessionName" binding:"required"`
	CreatedAt   string  `json:"createdAt" binding:"required"`
	CreatedBy   string  `json:"createdBy" binding:"required"`
	FileCount   int64   `json:"fileCount"`
	CompletedAt *string `json:"completedAt"`
	Status      string  `json:"status" binding:"required"`
	Warnings    int64   `json:"warnings"`
	RowCount    int64   `json:"rowCount"`
}

// Classifier is a classification scheme applied to documents
type Classifier struct {
	ID          string  `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	IsHierarchy bool    `json:"isHierarchy"`
	ParentID    *string `json:"parentId"`
	Prompt      string  `json:"prompt" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

// ClassifierData is one code row of a classifier, keyed by
// (classifierId, code)
type ClassifierData struct {
	ClassifierID string  `json:"classifierId" binding:"required"`
	Code         string  `json:"code" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Prompt       *string `json:"prompt"`
}

// ClassifierExport is a classifier with its data rows attached
type ClassifierExport struct {
	Classifier
	Data []ClassifierData `json:"data"`
}

// Enricher is a named extraction rule, unique by name
type Enricher struct {
	Name       string  `json:"name" binding:"required"`
	SearchTerm string  `json:"searchTerm" binding:"required"`
	Body       string  `json:"body" binding:"required"`
	Active     bool    `json:"active"`
	Value      *string `json:"value"`
}

// BGSClassification is a borehole-record code applied to a document
type BGSClassification struct {
	DocumentID  string `json:"documentId" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Explanation string `json:"explanation" binding:"required"`
	Tooltip     string `json:"tooltip" binding:"required"`
	AppliedAt   string `json:"appliedAt" binding:"required"`
}

// UserEdit records a manual correction to a classified field
type UserEdit struct {
	DocumentID    string  `json:"documentId" binding:"required"`
	Field         string  `json:"field" binding:"required"`
	OriginalValue string  `json:"originalValue" binding:"required"`
	EditedValue   string  `json:"editedValue" binding:"required"`
	EditedBy      string  `json:"editedBy" binding:"required"`
	EditedAt      string  `json:"editedAt" binding:"required"`
	Reason        *string `json:"reason"`
}

// AIEdit is the export row for machine-made edits
type AIEdit struct {
	DocumentID    string `json:"documentId"`
	Field         string `json:"field"`
	OriginalValue string `json:"originalValue"`
	EditedValue   string `json:"editedValue"`
	EditedAt      string `json:"editedAt"`
}

// SessionStandardExport bundles the classification standard for a session
type SessionStandardExport struct {
	Classifiers []ClassifierExport `json:"classifiers"`
	Enrichers   []Enricher         `json:"enrichers"`
}
