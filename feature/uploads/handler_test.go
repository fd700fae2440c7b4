package uploads_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"site-cms/core/database/testdb"
	"site-cms/core/loader"
	"site-cms/core/response"
	"site-cms/core/storage/mocks"
	"site-cms/feature/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func multipartBody(t *testing.T, name, contentType string, content []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadServeDelete(t *testing.T) {
	client := new(mocks.Client)
	opts := uploads.Options{Bucket: "site-cms", Prefix: "uploads", MaxBytes: 1 << 20, URLBase: "/api/uploads"}
	app := fiber.New()
	f := uploads.NewFeature(testdb.New(t, &uploads.File{}), client, opts, zap.NewNop())
	require.NoError(t, f.Load(loader.Routers{Public: app.Group("/api"), Admin: app.Group("/api/admin")}))

	client.On("PutObject", mock.Anything, "site-cms", mock.Anything, mock.Anything, int64(4), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	body, ct := multipartBody(t, "brochure.pdf", "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest("POST", "/api/admin/upload", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct{ Data uploads.File }
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, uploads.TypeDocument, created.Data.FileType)

	client.On("GetObject", mock.Anything, "site-cms", created.Data.Path, minio.GetObjectOptions{}).
		Return(io.NopCloser(bytes.NewReader([]byte("%PDF"))), nil)
	resp, err = app.Test(httptest.NewRequest("GET", created.Data.URL, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	served, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF", string(served))

	resp, err = app.Test(httptest.NewRequest("GET", "/api/admin/uploads/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	client.On("RemoveObject", mock.Anything, "site-cms", created.Data.Path, mock.Anything).Return(nil)
	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/admin/uploads/"+created.Data.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/admin/uploads/"+created.Data.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUploadWithoutFile(t *testing.T) {
	app := fiber.New()
	f := uploads.NewFeature(testdb.New(t, &uploads.File{}), new(mocks.Client), uploads.Options{MaxBytes: 1 << 20}, zap.NewNop())
	require.NoError(t, f.Load(loader.Routers{Public: app.Group("/api"), Admin: app.Group("/api/admin")}))

	resp, err := app.Test(httptest.NewRequest("POST", "/api/admin/upload", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var env response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "No file provided", env.Message)
}
