package uploads

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"site-cms/core/database/testdb"
	"site-cms/core/response"
	"site-cms/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const bucket = "site-cms"

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 64)...)

func newService(t *testing.T, client *mocks.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := Options{Bucket: bucket, Prefix: "uploads", MaxBytes: 10 << 20, URLBase: "/api/uploads"}
	return NewService(testdb.New(t, &File{}), client, opts, logger)
}

func seedFile(t *testing.T, svc *Service, filename, fileType string) *File {
	f := &File{
		Filename:     filename,
		OriginalName: filename,
		Mimetype:     "image/png",
		Size:         10,
		Path:         "uploads/" + filename,
		URL:          "/api/uploads/" + filename,
		FileType:     fileType,
	}
	require.NoError(t, svc.db.Create(f).Error)
	return f
}

func TestService_Store(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, client, nil)
	client.On("PutObject", mock.Anything, bucket, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, ".jpg")
	}), mock.Anything, int64(5), minio.PutObjectOptions{ContentType: "image/jpeg"}).
		Return(minio.UploadInfo{}, nil).Once()

	file, err := svc.Store(context.Background(), Incoming{Name: "Team Photo.JPG", Size: 5, ContentType: "image/jpeg"}, strings.NewReader("12345"), "admin-1")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(file.Filename, ".jpg"))
	assert.Equal(t, "Team Photo.JPG", file.OriginalName)
	assert.Equal(t, "uploads/"+file.Filename, file.Path)
	assert.Equal(t, "/api/uploads/"+file.Filename, file.URL)
	assert.Equal(t, TypeImage, file.FileType)
	require.NotNil(t, file.UploadedBy)
	assert.Equal(t, "admin-1", *file.UploadedBy)
	client.AssertExpectations(t)
}

func TestService_StoreSniffsUndeclaredType(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, client, nil)

	var written []byte
	client.On("PutObject", mock.Anything, bucket, mock.Anything, mock.Anything, int64(len(pngBytes)), mock.Anything).
		Return(func(_ context.Context, _, _ string, r io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			assert.Equal(t, "image/png", opts.ContentType)
			written, _ = io.ReadAll(r)
			return minio.UploadInfo{}, nil
		}, nil).Once()

	file, err := svc.Store(context.Background(), Incoming{Name: "logo.png", Size: int64(len(pngBytes)), ContentType: "application/octet-stream"}, bytes.NewReader(pngBytes), "")
	require.NoError(t, err)
	assert.Equal(t, "image/png", file.Mimetype)
	assert.Nil(t, file.UploadedBy)
	assert.Equal(t, pngBytes, written)
}

func TestService_StoreRejectsBeforeWriting(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, client, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		in   Incoming
		msg  string
	}{
		{"empty", Incoming{Name: "a.png", Size: 0, ContentType: "image/png"}, "No file provided"},
		{"too large", Incoming{Name: "a.png", Size: 10<<20 + 1, ContentType: "image/png"}, "File size exceeds limit (10MB)"},
		{"type", Incoming{Name: "a.exe", Size: 3, ContentType: "application/x-msdownload"}, "Invalid file type: application/x-msdownload"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Store(ctx, tc.in, strings.NewReader("abc"), "")
			require.Error(t, err)
			assert.True(t, response.IsKind(err, response.KindValidation))
			assert.Equal(t, tc.msg, err.Error())
		})
	}

	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	files, err := svc.List(ctx, Filters{})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestService_StoreWriteFailureRecordsNothing(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, client, nil)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket unavailable"))

	_, err := svc.Store(context.Background(), Incoming{Name: "a.pdf", Size: 3, ContentType: "application/pdf"}, strings.NewReader("abc"), "")
	require.Error(t, err)
	assert.Equal(t, response.KindInternal, response.KindOf(err))

	var count int64
	require.NoError(t, svc.db.Model(&File{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestService_DeleteToleratesMissingBytes(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	client := new(mocks.Client)
	svc := newService(t, client, zap.New(core))
	file := seedFile(t, svc, "gone.png", TypeImage)

	client.On("RemoveObject", mock.Anything, bucket, "uploads/gone.png", minio.RemoveObjectOptions{}).
		Return(errors.New("The specified key does not exist.")).Once()

	require.NoError(t, svc.Delete(context.Background(), file.ID))

	_, err := svc.Get(context.Background(), file.ID)
	assert.True(t, response.IsKind(err, response.KindNotFound))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Could not delete stored object", logs.All()[0].Message)
	client.AssertExpectations(t)
}

func TestService_DeleteMissingRow(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, client, nil)

	err := svc.Delete(context.Background(), "nope")
	assert.True(t, response.IsKind(err, response.KindNotFound))
	client.AssertNotCalled(t, "RemoveObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ListAndStats(t *testing.T) {
	svc := newService(t, new(mocks.Client), nil)
	ctx := context.Background()
	seedFile(t, svc, "hero.png", TypeImage)
	seedFile(t, svc, "team.png", TypeImage)
	seedFile(t, svc, "brochure.pdf", TypeDocument)

	images, err := svc.List(ctx, Filters{FileType: TypeImage})
	require.NoError(t, err)
	assert.Len(t, images, 2)

	all, err := svc.List(ctx, Filters{FileType: "all", Search: "bro"})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "brochure.pdf", all[0].Filename)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Stats{Total: 3, Images: 2, Documents: 1, TotalSize: 30}, stats)
}

func TestService_FindAndPurgeOrphans(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, client, nil)
	ctx := context.Background()
	seedFile(t, svc, "a.png", TypeImage)
	seedFile(t, svc, "b.png", TypeImage)

	client.On("ListObjects", mock.Anything, bucket, minio.ListObjectsOptions{Prefix: "uploads/", Recursive: true}).
		Return(func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 2)
			ch <- minio.ObjectInfo{Key: "uploads/a.png"}
			ch <- minio.ObjectInfo{Key: "uploads/c.png"}
			close(ch)
			return ch
		})

	report, err := svc.FindOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"uploads/c.png"}, report.Objects)
	assert.Equal(t, []string{"b.png"}, report.Missing)

	client.On("RemoveObjects", mock.Anything, bucket, mock.Anything, minio.RemoveObjectsOptions{}).Return(nil)
	removed, err := svc.PurgeOrphans(ctx, report.Objects)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestService_OpenUnknownFile(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, client, nil)

	_, _, err := svc.Open(context.Background(), "../etc/passwd")
	assert.True(t, response.IsKind(err, response.KindNotFound))
	client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
