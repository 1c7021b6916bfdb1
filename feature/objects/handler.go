package objects

import (
	"errors"

	"storage-facade/core/logger"
	"storage-facade/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for objects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/buckets", h.HandleListBuckets)

	group := app.Group("/objects")
	group.Get("/", h.HandleListFiles)
	group.Delete("/", h.HandleDelete)
	group.Get("/find", h.HandleFindFiles)
	group.Get("/one", h.HandleFindOneFile)
	group.Get("/url", h.HandleAccessURL)
	group.Post("/upload", h.HandleUpload)
	group.Post("/fetch", h.HandleFetch)
	group.Post("/copy", h.HandleCopy)
	group.Post("/move", h.HandleMove)
	group.Post("/rename", h.HandleRename)
}

// FetchRequest is the body of POST /objects/fetch.
type FetchRequest struct {
	URL    string `json:"url"`
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// TransferRequest is the body of POST /objects/copy, /move and /rename.
type TransferRequest struct {
	Bucket       string `json:"bucket"`
	Key          string `json:"key"`
	TargetBucket string `json:"target_bucket"`
	TargetKey    string `json:"target_key"`
}

// HandleListBuckets lists all buckets.
// @Summary List Buckets
// @Description Lists the names of all buckets of the account.
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} string "Bucket names"
// @Failure 502 {object} map[string]string "Storage unreachable"
// @Router /buckets [get]
func (h *Handler) HandleListBuckets(c *fiber.Ctx) error {
	names, err := h.service.ListBuckets(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(names)
}

// HandleListFiles lists every object under a prefix.
// @Summary List Files
// @Description Lists every object under the prefix, walking all pages.
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Param bucket query string false "Bucket (defaults to the configured bucket)"
// @Param prefix query string false "Key prefix"
// @Param limit query int false "Page size" default(1000)
// @Success 200 {array} storage.FileInfo "Objects"
// @Failure 404 {object} map[string]string "Bucket not found"
// @Router /objects [get]
func (h *Handler) HandleListFiles(c *fiber.Ctx) error {
	files, err := h.service.ListFiles(c.UserContext(), c.Query("bucket"), c.Query("prefix"), c.QueryInt("limit", storage.DefaultLimit))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(files)
}

// HandleFindFiles returns the first page of objects under a prefix.
// @Summary Find Files
// @Description Returns the first listing page under the prefix, or 404 when nothing matches.
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Param bucket query string false "Bucket (defaults to the configured bucket)"
// @Param prefix query string false "Key prefix"
// @Param limit query int false "Page size" default(1000)
// @Success 200 {array} storage.FileInfo "Objects"
// @Failure 404 {object} map[string]string "Nothing found"
// @Router /objects/find [get]
func (h *Handler) HandleFindFiles(c *fiber.Ctx) error {
	files, err := h.service.FindFiles(c.UserContext(), c.Query("bucket"), FindOptions{
		Prefix: c.Query("prefix"),
		Limit:  c.QueryInt("limit", storage.DefaultLimit),
	})
	if err != nil {
		return h.fail(c, err)
	}
	if files == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(files)
}

// HandleFindOneFile returns the first object whose key starts with key.
// @Summary Find One File
// @Description Returns the first object whose key starts with the given key, or 404.
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Param bucket query string false "Bucket (defaults to the configured bucket)"
// @Param key query string true "Key or key prefix"
// @Param limit query int false "Page size" default(1000)
// @Success 200 {object} storage.FileInfo "Object"
// @Failure 404 {object} map[string]string "Nothing found"
// @Router /objects/one [get]
func (h *Handler) HandleFindOneFile(c *fiber.Ctx) error {
	file, err := h.service.FindOneFile(c.UserContext(), c.Query("bucket"), c.Query("key"), FindOptions{
		Limit: c.QueryInt("limit", storage.DefaultLimit),
	})
	if err != nil {
		return h.fail(c, err)
	}
	if file == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(file)
}

// HandleAccessURL returns the public URL of an object.
// @Summary Access URL
// @Description Returns the public URL of an object on the configured host.
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Param key query string true "Object key"
// @Success 200 {object} map[string]string "URL"
// @Failure 400 {object} map[string]string "Missing key"
// @Router /objects/url [get]
func (h *Handler) HandleAccessURL(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}
	return c.JSON(fiber.Map{"url": h.service.AccessURL(key)})
}

// HandleUpload uploads a multipart file.
// @Summary Upload File
// @Description Uploads the multipart "file" field. The key defaults to the uploaded file name.
// @Tags objects
// @Security ApiKeyAuth
// @Accept mpfd
// @Produce json
// @Param file formData file true "File"
// @Param bucket formData string false "Bucket (defaults to the configured bucket)"
// @Param key formData string false "Object key"
// @Param mime formData string false "Mime type"
// @Success 200 {object} map[string]interface{} "Upload response"
// @Failure 400 {object} map[string]string "Bad request"
// @Router /objects/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	f, err := fh.Open()
	if err != nil {
		return h.fail(c, storage.LocalIOError("upload", c.FormValue("bucket"), fh.Filename, err))
	}

	key := c.FormValue("key")
	if isBlank(key) {
		key = fh.Filename
	}

	body, err := h.service.UploadStream(c.UserContext(), f, c.FormValue("bucket"), key, StreamOptions{
		MimeType: c.FormValue("mime"),
	})
	if err != nil {
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(body)
}

// HandleFetch pulls a remote URL into a bucket.
// @Summary Fetch To Bucket
// @Description Downloads the URL server-side and stores it in the bucket.
// @Tags objects
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body FetchRequest true "Fetch request"
// @Success 200 {object} map[string]string "Resulting key"
// @Failure 400 {object} map[string]string "Bad request"
// @Router /objects/fetch [post]
func (h *Handler) HandleFetch(c *fiber.Ctx) error {
	var req FetchRequest
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
	}

	key, err := h.service.FetchToBucket(c.UserContext(), req.URL, req.Bucket, FetchOptions{Key: req.Key})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"key": key})
}

// HandleCopy copies an object.
// @Summary Copy Object
// @Tags objects
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Source and target"
// @Success 200 {object} map[string]string "Status"
// @Failure 404 {object} map[string]string "Source not found"
// @Router /objects/copy [post]
func (h *Handler) HandleCopy(c *fiber.Ctx) error {
	req, ok := parseTransfer(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key and target_key are required"})
	}
	if err := h.service.CopyObject(c.UserContext(), req.Bucket, req.Key, req.TargetBucket, req.TargetKey); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "copied"})
}

// HandleMove moves an object.
// @Summary Move Object
// @Tags objects
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Source and target"
// @Success 200 {object} map[string]string "Status"
// @Failure 404 {object} map[string]string "Source not found"
// @Router /objects/move [post]
func (h *Handler) HandleMove(c *fiber.Ctx) error {
	req, ok := parseTransfer(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key and target_key are required"})
	}
	if err := h.service.MoveObject(c.UserContext(), req.Bucket, req.Key, req.TargetBucket, req.TargetKey); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "moved"})
}

// HandleRename renames an object inside its bucket.
// @Summary Rename Object
// @Tags objects
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Bucket, key and target key"
// @Success 200 {object} map[string]string "Status"
// @Failure 404 {object} map[string]string "Source not found"
// @Router /objects/rename [post]
func (h *Handler) HandleRename(c *fiber.Ctx) error {
	req, ok := parseTransfer(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key and target_key are required"})
	}
	if err := h.service.RenameObject(c.UserContext(), req.Bucket, req.Key, req.TargetKey); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "renamed"})
}

// HandleDelete deletes an object.
// @Summary Delete Object
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Param bucket query string false "Bucket (defaults to the configured bucket)"
// @Param key query string true "Object key"
// @Success 200 {object} map[string]string "Status"
// @Failure 404 {object} map[string]string "Not found"
// @Router /objects [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}
	if err := h.service.DeleteObject(c.UserContext(), c.Query("bucket"), key); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// parseTransfer decodes a TransferRequest and reports whether it names both
// a source and a target key.
func parseTransfer(c *fiber.Ctx) (*TransferRequest, bool) {
	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, false
	}
	if req.Key == "" || req.TargetKey == "" {
		return nil, false
	}
	return &req, true
}

// fail writes err with the status matching its kind.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error("Request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps a storage error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case storage.IsNotFound(err):
		return fiber.StatusNotFound
	case storage.IsAccessDenied(err):
		return fiber.StatusForbidden
	case errors.Is(err, storage.ErrInvalidRequest), storage.IsLocalIO(err):
		return fiber.StatusBadRequest
	case storage.IsNetwork(err):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
