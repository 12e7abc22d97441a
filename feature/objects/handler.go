package objects

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"bucket-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for object operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Get("/", h.HandleList)
	group.Get("/stat", h.HandleStat)
	group.Get("/download", h.HandleDownload)
	group.Get("/sha256", h.HandleSha256)
	group.Post("/", h.HandleUpload)
	group.Put("/metadata", h.HandleUpdateMetadata)
	group.Delete("/", h.HandleDelete)

	app.Get("/buckets", h.HandleBuckets)
}

// HandleList returns the bucket's object keys. With ?all=true directory
// markers are included; ?prefix= filters the file listing.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var (
		keys []string
		err  error
	)
	if c.Query("all") == "true" {
		keys, err = h.service.ListObjects(c.Context())
	} else {
		keys, err = h.service.ListFiles(c.Context(), c.Query("prefix"))
	}
	if err != nil {
		l.Error("Listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if keys == nil {
		keys = []string{}
	}
	return c.JSON(fiber.Map{
		"bucket":  h.service.Bucket(),
		"objects": keys,
	})
}

// HandleStat returns the object's headers, 404 when absent.
func (h *Handler) HandleStat(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing key parameter"})
	}

	headers, err := h.service.Stat(c.Context(), key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(headers)
}

// HandleDownload streams the object body.
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing key parameter"})
	}

	// Stat first: the SDK stream only reports missing objects on first read.
	headers, err := h.service.Stat(c.Context(), key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	body, err := h.service.Open(c.Context(), key)
	if err != nil {
		l.Error("Download failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Attachment(filepath.Base(key))
	return c.SendStream(body, int(headers.ContentLength))
}

// HandleSha256 returns the object's content digest.
func (h *Handler) HandleSha256(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing key parameter"})
	}

	if _, err := h.service.Stat(c.Context(), key); err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	digest, err := h.service.Sha256(c.Context(), key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"key": key, "sha256": digest})
}

// HandleUpload stores a multipart file under the given key.
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing key parameter"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file field"})
	}

	// Fiber only hands us a multipart header; spool to disk for FPutObject.
	// The spool path must be unique per request: the filename is
	// client-controlled and uploads run concurrently.
	spool, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	spool.Close()
	tmp := spool.Name()
	defer os.Remove(tmp)

	if err := c.SaveFile(file, tmp); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var metadata map[string]string
	if raw := c.FormValue("metadata"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid metadata JSON"})
		}
	}

	if err := h.service.Upload(c.Context(), tmp, key, metadata); err != nil {
		l.Error("Upload failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"key": key, "status": "uploaded"})
}

// HandleUpdateMetadata replaces the object's user metadata with the JSON
// body mapping (full replace, not merge).
func (h *Handler) HandleUpdateMetadata(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing key parameter"})
	}

	var meta map[string]string
	if err := c.BodyParser(&meta); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid metadata JSON"})
	}

	ok, err := h.service.UpdateMetadata(c.Context(), key, meta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "object not found: " + key})
	}
	return c.JSON(fiber.Map{"key": key, "status": "updated"})
}

// HandleDelete removes an object. The interactive gate does not apply over
// HTTP; the API key middleware guards this route instead.
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing key parameter"})
	}

	if err := h.service.Delete(c.Context(), key, false); err != nil {
		l.Error("Deletion failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"key": key, "status": "deleted"})
}

// HandleBuckets lists all bucket names visible to the credentials.
func (h *Handler) HandleBuckets(c *fiber.Ctx) error {
	names, err := h.service.Buckets(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"buckets": names})
}
