package uploads

import (
	"strings"

	"site-cms/core/database"
)

// File types.
const (
	TypeImage    = "image"
	TypeVideo    = "video"
	TypeDocument = "document"
	TypeOther    = "other"
)

// AllowedTypes is the content-type allow-list for uploads.
var AllowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"image/gif":       true,
	"application/pdf": true,
	"video/mp4":       true,
	"video/webm":      true,
}

// File is the metadata row of an uploaded file.
type File struct {
	database.Model
	Filename     string  `gorm:"size:191;not null;uniqueIndex" json:"filename"`
	OriginalName string  `gorm:"size:255;not null" json:"originalName"`
	Mimetype     string  `gorm:"size:100;not null" json:"mimetype"`
	Size         int64   `gorm:"not null" json:"size"`
	Path         string  `gorm:"size:512;not null" json:"path"`
	URL          string  `gorm:"column:url;size:512;not null" json:"url"`
	FileType     string  `gorm:"size:20;not null;index" json:"fileType"`
	UploadedBy   *string `gorm:"size:36;index" json:"uploadedBy"`
}

// TableName returns the uploads table.
func (File) TableName() string {
	return "file_uploads"
}

// Incoming is a file received from a client.
type Incoming struct {
	Name        string
	Size        int64
	ContentType string
}

// Filters narrows the admin file listing. Empty fields apply no filter;
// FileType "all" is the same as empty.
type Filters struct {
	UploadedBy string
	FileType   string
	Search     string
}

// Stats summarises stored files.
type Stats struct {
	Total     int64 `json:"total"`
	Images    int64 `json:"images"`
	Documents int64 `json:"documents"`
	Videos    int64 `json:"videos"`
	TotalSize int64 `json:"totalSize"`
}

// OrphanReport lists mismatches between stored objects and metadata rows.
type OrphanReport struct {
	// Objects are object keys with no metadata row.
	Objects []string `json:"objects"`
	// Missing are filenames whose row points at no object.
	Missing []string `json:"missing"`
}

// Classify maps a content type to its file type.
func Classify(mimetype string) string {
	switch {
	case strings.HasPrefix(mimetype, "image/"):
		return TypeImage
	case strings.HasPrefix(mimetype, "video/"):
		return TypeVideo
	case mimetype == "application/pdf":
		return TypeDocument
	default:
		return TypeOther
	}
}
