package uploads

import (
	"site-cms/core/loader"
	"site-cms/core/logger"
	mwauth "site-cms/core/middleware/auth"
	"site-cms/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for uploads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the uploads routes.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	r.Public.Get("/uploads/:filename", h.HandleServe)

	r.Admin.Post("/upload", h.HandleUpload)
	r.Admin.Get("/uploads", h.HandleList)
	r.Admin.Get("/uploads/stats", h.HandleStats)
	r.Admin.Get("/uploads/:id", h.HandleGet)
	r.Admin.Delete("/uploads/:id", h.HandleDelete)
}

// HandleUpload stores a file sent as multipart field "file".
// @Summary Upload File
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File"
// @Success 201 {object} response.Envelope{data=File}
// @Failure 400 {object} response.Envelope
// @Router /admin/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return response.Fail(c, response.Validation("No file provided"))
	}
	body, err := header.Open()
	if err != nil {
		return response.Fail(c, response.Validation("Unreadable file"))
	}
	defer body.Close()

	var uploadedBy string
	if claims := mwauth.Claims(c); claims != nil {
		uploadedBy = claims.AdminID
	}

	file, err := h.service.Store(c.UserContext(), Incoming{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get(fiber.HeaderContentType),
	}, body, uploadedBy)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Upload rejected", zap.String("name", header.Filename), zap.Error(err))
		return response.Fail(c, err)
	}
	return response.Created(c, "File uploaded successfully", file)
}

// HandleList returns uploaded files.
// @Summary List Uploads
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param uploadedBy query string false "Uploader admin ID"
// @Param fileType query string false "image, video, document, other or all"
// @Param search query string false "Original name contains"
// @Success 200 {object} response.Envelope{data=[]File}
// @Router /admin/uploads [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	files, err := h.service.List(c.UserContext(), Filters{
		UploadedBy: c.Query("uploadedBy"),
		FileType:   c.Query("fileType"),
		Search:     c.Query("search"),
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, files)
}

// HandleStats returns file counts and total size.
// @Summary Upload Stats
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=Stats}
// @Router /admin/uploads/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, stats)
}

// HandleGet returns one file's metadata.
// @Summary Get Upload
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param id path string true "File ID"
// @Success 200 {object} response.Envelope{data=File}
// @Failure 404 {object} response.Envelope
// @Router /admin/uploads/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	file, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, file)
}

// HandleDelete removes a file.
// @Summary Delete Upload
// @Description Removes the metadata row; the stored bytes are removed best effort.
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param id path string true "File ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/uploads/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "File deleted successfully", nil)
}

// HandleServe streams a stored file.
// @Summary Serve Upload
// @Tags uploads
// @Produce octet-stream
// @Param filename path string true "Generated filename"
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /uploads/{filename} [get]
func (h *Handler) HandleServe(c *fiber.Ctx) error {
	reader, file, err := h.service.Open(c.UserContext(), c.Params("filename"))
	if err != nil {
		return response.Fail(c, err)
	}

	c.Set(fiber.HeaderContentType, file.Mimetype)
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.SendStream(reader, int(file.Size))
}
