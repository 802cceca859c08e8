package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for the form fields around the file.
const multipartOverhead = 1 << 20

// limitBody caps the request body at maxFile plus the form overhead.
func limitBody(c *gin.Context, maxFile int64) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFile+multipartOverhead)
}

// openUpload opens fh for reading. The caller closes the returned closer.
func openUpload(fh *multipart.FileHeader) (dto.FileUpload, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return dto.FileUpload{}, nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	return dto.FileUpload{
		FileName:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}, f, nil
}

// multipartFile returns the first file under field of an already parsed form.
func multipartFile(c *gin.Context, field string) *multipart.FileHeader {
	if c.Request.MultipartForm == nil {
		return nil
	}
	if fhs := c.Request.MultipartForm.File[field]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

func uploadError(err error, maxFile int64) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperrors.NewValidationError("file", fmt.Sprintf("exceeds the maximum size of %d MB", maxFile>>20))
	}
	return apperrors.NewValidationError("file", "could not be read from the multipart form")
}

// parseMultipart reads the form under the body cap. It answers 400 and returns
// false when the body is too large or not a multipart form.
func parseMultipart(c *gin.Context, maxFile int64, action string) bool {
	limitBody(c, maxFile)
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		respondError(c, uploadError(err, maxFile), action)
		return false
	}
	return true
}
