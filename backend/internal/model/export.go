package model

// DocumentExport is the composed, denormalized representation of a document
// and its related nodes, shaped for SharePoint-compatible consumers. The
// download URL key is a literal field name external systems depend on; it is
// never treated as a nested path.
type DocumentExport struct {
	Name                 string          `json:"name"`
	Source               string          `json:"source"`
	FileName             *string         `json:"file_name"`
	LastModifiedDate     string          `json:"lastModifiedDate"`
	Size                 int64           `json:"size"`
	ID                   string          `json:"id"`
	SiteID               string          `json:"site_id"`
	DriveID              string          `json:"drive_id"`
	Label                string          `json:"label"`
	Type                 string          `json:"type"`
	DownloadURL          string          `json:"@microsoft.graph.downloadUrl"`
	CreatedDateTime      string          `json:"createdDateTime"`
	LastModifiedDateTime string          `json:"lastModifiedDateTime"`
	WebURL               string          `json:"webUrl"`
	Status               string          `json:"status"`
	CreatedBy            *UserRef        `json:"createdBy"`
	LastModifiedBy       *UserRef        `json:"lastModifiedBy"`
	ParentReference      *FolderRef      `json:"parentReference"`
	File                 *FileFacet      `json:"file"`
	FileSystemInfo       *FileSystemInfo `json:"fileSystemInfo"`
	Shared               *SharedFacet    `json:"shared"`
	CTag                 *string         `json:"cTag"`
	ETag                 *string         `json:"eTag"`
}

// UserRef is the nested identity object in a composed document
type UserRef struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// FolderRef is the nested parent-folder object in a composed document
type FolderRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	DriveType string `json:"driveType"`
	DriveID   string `json:"driveId"`
	SiteID    string `json:"siteId"`
}

// FileFacet carries the file metadata facet; presence is driven by a
// FileMetadata node being found.
type FileFacet struct {
	Hashes   Hashes `json:"hashes"`
	MimeType string `json:"mimeType"`
}

// Hashes holds content hashes of the stored file
type Hashes struct {
	QuickXorHash string `json:"quickXorHash"`
}

// FileSystemInfo carries filesystem timestamps sourced from metadata
type FileSystemInfo struct {
	CreatedDateTime      string `json:"createdDateTime"`
	LastModifiedDateTime string `json:"lastModifiedDateTime"`
}

// SharedFacet carries the sharing scope sourced from metadata
type SharedFacet struct {
	Scope string `json:"scope"`
}

// AggregatePayload is the flat inbound shape for the bulk /data endpoint:
// document fields plus prefixed sub-fields for the users, folder, file
// metadata, version and session that make up the aggregate.
type AggregatePayload struct {
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

	CreatedByID          string `json:"createdBy_id" binding:"required"`
	CreatedByEmail       string `json:"createdBy_email" binding:"required"`
	CreatedByDisplayName string `json:"createdBy_displayName" binding:"required"`

	LastModifiedByID          string `json:"lastModifiedBy_id" binding:"required"`
	LastModifiedByEmail       string `json:"lastModifiedBy_email" binding:"required"`
	LastModifiedByDisplayName string `json:"lastModifiedBy_displayName" binding:"required"`

	ParentReferenceID        string `json:"parentReference_id" binding:"required"`
	ParentReferenceName      string `json:"parentReference_name" binding:"required"`
	ParentReferencePath      string `json:"parentReference_path" binding:"required"`
	ParentReferenceDriveType string `json:"parentReference_driveType" binding:"required"`
	ParentReferenceDriveID   string `json:"parentReference_driveId" binding:"required"`
	ParentReferenceSiteID    string `json:"parentReference_siteId" binding:"required"`

	FileMimeType             string `json:"file_mimeType" binding:"required"`
	FileQuickXorHash         string `json:"file_quickXorHash" binding:"required"`
	FileSharedScope          string `json:"file_sharedScope" binding:"required"`
	FileCreatedDateTime      string `json:"file_createdDateTime" binding:"required"`
	FileLastModifiedDateTime string `json:"file_lastModifiedDateTime" binding:"required"`

	VersionETag          string `json:"version_eTag" binding:"required"`
	VersionCTag          string `json:"version_cTag" binding:"required"`
	VersionTimestamp     string `json:"version_timestamp" binding:"required"`
	VersionVersionNumber int64  `json:"version_versionNumber"`

	SessionID          string  `json:"sessionId" binding:"required"`
	SessionName        string  `json:"sessionName" binding:"required"`
	SessionCreatedAt   string  `json:"session_createdAt" binding:"required"`
	SessionCreatedBy   string  `json:"session_createdBy" binding:"required"`
	SessionFileCount   int64   `json:"session_fileCount"`
	SessionCompletedAt *string `json:"session_completedAt"`
	SessionStatus      string  `json:"session_status" binding:"required"`
	SessionWarnings    int64   `json:"session_warnings"`
	SessionRowCount    int64   `json:"session_rowCount"`
}
