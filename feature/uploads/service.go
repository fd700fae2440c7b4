package uploads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"site-cms/core/database"
	"site-cms/core/reconcile"
	"site-cms/core/response"
	"site-cms/core/storage"
	"site-cms/core/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options locates uploaded bytes and bounds what is accepted.
type Options struct {
	// Bucket holds every uploaded object.
	Bucket string
	// Prefix is the upload root inside the bucket.
	Prefix string
	// MaxBytes is the size ceiling of one file.
	MaxBytes int64
	// URLBase is the public path files are served from ("/api/uploads").
	URLBase string
}

// OptionsFrom builds Options from the storage configuration.
func OptionsFrom(cfg storage.Config, urlBase string) Options {
	return Options{Bucket: cfg.Bucket, Prefix: cfg.Prefix, MaxBytes: cfg.MaxUploadBytes, URLBase: urlBase}
}

// Service stores uploaded files and their metadata.
type Service struct {
	db     *gorm.DB
	client storage.Client
	opts   Options
	logger *zap.Logger
}

// NewService creates a new uploads service.
func NewService(db *gorm.DB, client storage.Client, opts Options, logger *zap.Logger) *Service {
	return &Service{db: db, client: client, opts: opts, logger: logger}
}

// Store validates the file, writes its bytes under a fresh name and records
// its metadata. uploadedBy may be empty.
func (s *Service) Store(ctx context.Context, in Incoming, body io.Reader, uploadedBy string) (*File, error) {
	// 1. Size ceiling
	if in.Size <= 0 {
		return nil, response.Validation("No file provided")
	}
	if in.Size > s.opts.MaxBytes {
		return nil, response.Validation(fmt.Sprintf("File size exceeds limit (%dMB)", s.opts.MaxBytes>>20))
	}

	// 2. Content type allow-list
	contentType, body, err := detectType(in.ContentType, body)
	if err != nil {
		return nil, response.Validation("Unreadable file")
	}
	if !AllowedTypes[contentType] {
		return nil, response.Validation(fmt.Sprintf("Invalid file type: %s", contentType))
	}

	// 3. Bytes
	filename := uuid.NewString() + strings.ToLower(path.Ext(in.Name))
	key := storage.ObjectName(s.opts.Prefix, filename)
	if _, err := s.client.PutObject(ctx, s.opts.Bucket, key, body, in.Size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		s.logger.Error("Upload write failed", zap.String("object", key), zap.Error(err))
		return nil, response.Internal("Failed to store file", err)
	}

	// 4. Metadata
	file := &File{
		Filename:     filename,
		OriginalName: in.Name,
		Mimetype:     contentType,
		Size:         in.Size,
		Path:         key,
		URL:          path.Join(s.opts.URLBase, filename),
		FileType:     Classify(contentType),
		UploadedBy:   utils.NilIfBlank(&uploadedBy),
	}
	if err := s.db.WithContext(ctx).Create(file).Error; err != nil {
		s.logger.Error("Upload record failed", zap.String("object", key), zap.Error(err))
		s.removeObject(ctx, key)
		return nil, database.Classify(err, "Failed to save file record")
	}

	s.logger.Info("File uploaded",
		zap.String("filename", filename),
		zap.String("file_type", file.FileType),
		zap.Int64("size", file.Size),
	)
	return file, nil
}

// detectType normalises the declared content type, sniffing the leading bytes
// when none or a generic one was declared. The returned reader yields the
// whole body.
func detectType(declared string, body io.Reader) (string, io.Reader, error) {
	declared, _, _ = strings.Cut(declared, ";")
	declared = strings.ToLower(strings.TrimSpace(declared))
	if declared != "" && declared != "application/octet-stream" {
		return declared, body, nil
	}

	var head bytes.Buffer
	detected, err := mimetype.DetectReader(io.TeeReader(body, &head))
	if err != nil {
		return "", nil, err
	}
	contentType, _, _ := strings.Cut(detected.String(), ";")
	return contentType, io.MultiReader(&head, body), nil
}

// Get returns one file's metadata.
func (s *Service) Get(ctx context.Context, id string) (*File, error) {
	return s.find(ctx, "id", id)
}

func (s *Service) find(ctx context.Context, column, value string) (*File, error) {
	var file File
	err := s.db.WithContext(ctx).Where(column+" = ?", value).Take(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("File not found")
	}
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch file")
	}
	return &file, nil
}

// List returns files matching filters, newest first.
func (s *Service) List(ctx context.Context, filters Filters) ([]File, error) {
	q := s.db.WithContext(ctx)
	if filters.UploadedBy != "" {
		q = q.Where("uploaded_by = ?", filters.UploadedBy)
	}
	if filters.FileType != "" && filters.FileType != "all" {
		q = q.Where("file_type = ?", filters.FileType)
	}
	if filters.Search != "" {
		q = q.Where("original_name LIKE ?", "%"+filters.Search+"%")
	}

	files := []File{}
	if err := q.Order("created_at DESC").Order("id DESC").Find(&files).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch files")
	}
	return files, nil
}

// Stats counts stored files by type and sums their sizes.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var rows []struct {
		FileType string
		Count    int64
		Size     int64
	}
	err := s.db.WithContext(ctx).Model(&File{}).
		Select("file_type, COUNT(*) AS count, COALESCE(SUM(size), 0) AS size").
		Group("file_type").
		Scan(&rows).Error
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch file stats")
	}

	stats := &Stats{}
	for _, r := range rows {
		stats.Total += r.Count
		stats.TotalSize += r.Size
		switch r.FileType {
		case TypeImage:
			stats.Images = r.Count
		case TypeDocument:
			stats.Documents = r.Count
		case TypeVideo:
			stats.Videos = r.Count
		}
	}
	return stats, nil
}

// Delete removes a file's metadata row, then its bytes. Failing to remove the
// bytes is logged and does not fail the delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	file, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := reconcile.DeleteByID[File](s.db.WithContext(ctx), id, "File not found"); err != nil {
		return database.Classify(err, "Failed to delete file")
	}

	s.removeObject(ctx, file.Path)
	s.logger.Info("File deleted", zap.String("filename", file.Filename))
	return nil
}

func (s *Service) removeObject(ctx context.Context, key string) {
	if err := s.client.RemoveObject(ctx, s.opts.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Warn("Could not delete stored object", zap.String("object", key), zap.Error(err))
	}
}

// Open returns the bytes of a stored file by its generated filename.
// The caller closes the reader.
func (s *Service) Open(ctx context.Context, filename string) (io.ReadCloser, *File, error) {
	file, err := s.find(ctx, "filename", filename)
	if err != nil {
		return nil, nil, err
	}
	reader, err := s.client.GetObject(ctx, s.opts.Bucket, file.Path, minio.GetObjectOptions{})
	if err != nil {
		s.logger.Error("Upload read failed", zap.String("object", file.Path), zap.Error(err))
		return nil, nil, response.Internal("Failed to read file", err)
	}
	return reader, file, nil
}

// FindOrphans compares the objects under the upload root with the metadata rows.
func (s *Service) FindOrphans(ctx context.Context) (*OrphanReport, error) {
	var paths []string
	if err := s.db.WithContext(ctx).Model(&File{}).Pluck("path", &paths).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch files")
	}
	known := make(map[string]bool, len(paths))
	for _, p := range paths {
		known[p] = false
	}

	prefix := strings.Trim(s.opts.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	report := &OrphanReport{Objects: []string{}, Missing: []string{}}
	for obj := range s.client.ListObjects(ctx, s.opts.Bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if _, ok := known[obj.Key]; ok {
			known[obj.Key] = true
			continue
		}
		report.Objects = append(report.Objects, obj.Key)
	}
	for p, seen := range known {
		if !seen {
			report.Missing = append(report.Missing, path.Base(p))
		}
	}
	sort.Strings(report.Objects)
	sort.Strings(report.Missing)
	return report, nil
}

// PurgeOrphans removes the given objects and returns how many were removed.
func (s *Service) PurgeOrphans(ctx context.Context, keys []string) (int, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	var failed []string
	for rerr := range s.client.RemoveObjects(ctx, s.opts.Bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", rerr.ObjectName, rerr.Err))
		}
	}

	removed := len(keys) - len(failed)
	s.logger.Info("Orphaned uploads purged", zap.Int("removed", removed), zap.Int("failed", len(failed)))
	if len(failed) > 0 {
		return removed, fmt.Errorf("failed to remove %d objects: %v", len(failed), failed)
	}
	return removed, nil
}
