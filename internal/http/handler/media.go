package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jumpingkids/internal/service"
)

// mediaImportRequest names a public URL to pull exercise media from.
type mediaImportRequest struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// UploadExerciseMedia attaches media to an exercise the caller owns.
// Multipart requests stream the uploaded file; JSON requests name a
// public URL to import from instead.
//
// @Summary Upload exercise media
// @Tags Media
// @Security BearerAuth
// @Accept mpfd
// @Accept json
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /exercises/{id}/media [post]
func UploadExerciseMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			fh, err := c.FormFile("file")
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
			}

			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()

			ct := fh.Header.Get("Content-Type")
			if ct == "" {
				ct = "application/octet-stream"
			}

			kind := service.MediaKind(c.FormValue("kind"))
			ex, err := svc.Attach(c.UserContext(), id, claims.UserID, kind, f, fh.Filename, ct, fh.Size)
			if err != nil {
				return respondServiceError(c, err)
			}

			return respond(c, fiber.StatusCreated, ex, "Media attached successfully")
		}

		var in mediaImportRequest
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		ex, err := svc.ImportFromURL(c.UserContext(), id, claims.UserID, service.MediaKind(in.Kind), in.URL)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusCreated, ex, "Media imported successfully")
	}
}

// ExerciseMediaURL issues a short-lived download URL for an exercise's
// image or video.
//
// @Summary Get a media download URL
// @Tags Media
// @Security BearerAuth
// @Produce json
// @Param id path string true "Exercise ID"
// @Param kind query string false "Media kind (image or video)" default(image)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /exercises/{id}/media-url [get]
func ExerciseMediaURL(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		kind := service.MediaKind(c.Query("kind", string(service.MediaImage)))
		url, err := svc.PresignedURL(c.UserContext(), id, claims.UserID, kind)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, fiber.Map{"kind": kind, "url": url}, "Media URL issued successfully")
	}
}

// DownloadExerciseMedia streams stored media. Media referenced by an
// external URL is answered with a redirect instead.
//
// @Summary Download exercise media
// @Tags Media
// @Security BearerAuth
// @Produce octet-stream
// @Param id path string true "Exercise ID"
// @Param kind query string false "Media kind (image or video)" default(image)
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{}
// @Router /exercises/{id}/media [get]
func DownloadExerciseMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		kind := service.MediaKind(c.Query("kind", string(service.MediaImage)))
		rc, info, err := svc.Open(c.UserContext(), id, claims.UserID, kind)
		if err != nil {
			if errors.Is(err, service.ErrMediaNotStored) {
				url, perr := svc.PresignedURL(c.UserContext(), id, claims.UserID, kind)
				if perr != nil {
					return respondServiceError(c, perr)
				}
				return c.Redirect(url, fiber.StatusFound)
			}
			return respondServiceError(c, err)
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		// fasthttp closes the stream when it implements io.Closer.
		if info.Size > 0 {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}
