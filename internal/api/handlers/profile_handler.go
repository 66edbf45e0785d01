package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/hojadevida/internal/forms"
	"github.com/yoockh/hojadevida/internal/models"
	"github.com/yoockh/hojadevida/internal/services"
)

type ProfileHandler struct {
	svc   services.ProfileService
	phone *forms.PhoneField
}

func NewProfileHandler(svc services.ProfileService, phone *forms.PhoneField) *ProfileHandler {
	if phone == nil {
		phone = forms.DefaultPhoneField()
	}
	return &ProfileHandler{svc: svc, phone: phone}
}

// ProfileResponse is the stored profile plus its form representation, with
// the phone split into code and number.
type ProfileResponse struct {
	Profile *models.PersonalProfile `json:"profile"`
	Form    forms.ProfileForm       `json:"form"`
}

func (h *ProfileHandler) respond(c *gin.Context, p *models.PersonalProfile) {
	c.JSON(http.StatusOK, ProfileResponse{Profile: p, Form: forms.ProfileInitial(p, h.phone)})
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetMe(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, p)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var form forms.ProfileForm
	if !bindJSON(c, "ProfileHandler.Update", &form) {
		return
	}

	p, err := h.svc.Save(c.Request.Context(), userID, &form)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, p)
}

func (h *ProfileHandler) Photo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	up, file, ok := formUpload(c, "ProfileHandler.Photo", "photo", forms.MaxPhotoBytes)
	if !ok {
		return
	}
	defer file.Close()

	p, err := h.svc.SetPhoto(c.Request.Context(), userID, up)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, p)
}
