package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/hojadevida/internal/forms"
	"github.com/yoockh/hojadevida/internal/services"
)

// RecordRoutes is the HTTP surface of one child record collection.
type RecordRoutes interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	AttachCertificate(c *gin.Context)
	AcceptsCertificates() bool
}

// RecordHandler serves records of type T bound through form type F.
type RecordHandler[T any, F any, PF interface {
	*F
	forms.RecordForm[T]
}] struct {
	svc          services.RecordService[T]
	name         string
	certificates bool
}

func NewRecordHandler[T any, F any, PF interface {
	*F
	forms.RecordForm[T]
}](name string, svc services.RecordService[T], certificates bool) *RecordHandler[T, F, PF] {
	return &RecordHandler[T, F, PF]{svc: svc, name: name, certificates: certificates}
}

func (h *RecordHandler[T, F, PF]) AcceptsCertificates() bool { return h.certificates }

func (h *RecordHandler[T, F, PF]) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

func (h *RecordHandler[T, F, PF]) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	form := PF(new(F))
	if !bindJSON(c, h.name+"Handler.Create", form) {
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), userID, form)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *RecordHandler[T, F, PF]) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	form := PF(new(F))
	if !bindJSON(c, h.name+"Handler.Update", form) {
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), userID, c.Param("id"), form)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *RecordHandler[T, F, PF]) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecordHandler[T, F, PF]) AttachCertificate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	up, file, ok := formUpload(c, h.name+"Handler.AttachCertificate", "certificate", forms.MaxCertificateBytes)
	if !ok {
		return
	}
	defer file.Close()

	rec, err := h.svc.AttachCertificate(c.Request.Context(), userID, c.Param("id"), up)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
