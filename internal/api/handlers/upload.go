package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/hojadevida/internal/services"
	"github.com/yoockh/hojadevida/internal/utils"
)

// room for multipart headers and other form fields
const multipartOverhead = 1 << 20

// formUpload opens the multipart file in field. Bodies larger than limit
// are rejected before parsing. The caller closes the file.
func formUpload(c *gin.Context, op, field string, limit int64) (services.Upload, multipart.File, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)

	fh, err := c.FormFile(field)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(c, utils.E(utils.CodeTooLarge, op, "upload too large", err))
			return services.Upload{}, nil, false
		}
		writeError(c, utils.Invalid(op, "missing multipart field '"+field+"'",
			map[string]string{field: "Este campo es obligatorio."}, err))
		return services.Upload{}, nil, false
	}
	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return services.Upload{}, nil, false
	}
	return services.Upload{Filename: fh.Filename, Size: fh.Size, Body: file}, file, true
}
