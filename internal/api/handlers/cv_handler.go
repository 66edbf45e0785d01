package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/hojadevida/internal/services"
)

type CVHandler struct {
	svc services.ResumeService
}

func NewCVHandler(svc services.ResumeService) *CVHandler {
	return &CVHandler{svc: svc}
}

// PDF streams the caller's CV. ?inline=1 asks the browser to display it.
func (h *CVHandler) PDF(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	doc, err := h.svc.Generate(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	disposition := "attachment"
	if c.Query("inline") == "1" {
		disposition = "inline"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, doc.Filename))
	c.Header("X-Page-Count", strconv.Itoa(doc.Pages))
	c.Data(http.StatusOK, "application/pdf", doc.PDF)
}

func (h *CVHandler) Exports(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	h.listExports(c, userID)
}

// UserExports lists another user's history; mounted behind the admin role.
func (h *CVHandler) UserExports(c *gin.Context) {
	h.listExports(c, c.Param("user_id"))
}

func (h *CVHandler) listExports(c *gin.Context, userID string) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	rows, err := h.svc.Exports(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}
