package handlers

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/assistant/api/http/presenter"
	"github.com/artem13815/assistant/pkg/apperror"
	"github.com/artem13815/assistant/pkg/upload"
)

const uploadField = "file"

var errFileRequired = apperror.ValidationError("file is required")

type UploadHandler struct {
	uc  upload.UseCase
	log *zap.Logger
}

func NewUploadHandler(uc upload.UseCase, log *zap.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, log: log}
}

// Upload reads the file part and reports its name, content type and size.
// @Summary     Upload a file
// @Description Reads the whole file into memory and returns its metadata. Nothing is stored.
// @Tags        upload
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "any file"
// @Success     200 {object} upload.Result
// @Failure     422 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /upload/ [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	part, filename, err := filePart(c, uploadField)
	if err != nil {
		return presenter.Fail(c, err)
	}
	defer part.Close()

	var contentType *string
	if v, ok := part.Header["Content-Type"]; ok && len(v) > 0 {
		contentType = &v[0]
	}

	res, err := h.uc.Inspect(c.UserContext(), upload.File{
		Filename:    filename,
		ContentType: contentType,
		Body:        part,
	})
	if err != nil {
		h.log.Error("inspect upload", zap.String("filename", filename), zap.Error(err))
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// filePart finds the first part named field that carries a filename parameter.
// The filename is returned as sent, directory components and empty names included.
func filePart(c *fiber.Ctx, field string) (*multipart.Part, string, error) {
	mediaType, params, err := mime.ParseMediaType(c.Get(fiber.HeaderContentType))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") || params["boundary"] == "" {
		return nil, "", errFileRequired
	}
	mr := multipart.NewReader(bytes.NewReader(c.Body()), params["boundary"])
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, "", errFileRequired
		}
		if err != nil {
			return nil, "", apperror.ValidationError("invalid multipart payload")
		}
		_, disp, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		if err == nil && disp["name"] == field {
			if filename, ok := disp["filename"]; ok {
				return part, filename, nil
			}
		}
		part.Close()
	}
}
