package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/hojadevida/internal/forms"
)

type ChoicesHandler struct {
	phone *forms.PhoneField
}

func NewChoicesHandler(phone *forms.PhoneField) *ChoicesHandler {
	if phone == nil {
		phone = forms.DefaultPhoneField()
	}
	return &ChoicesHandler{phone: phone}
}

type phoneCode struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// PhoneCodes lists the calling codes in display order.
func (h *ChoicesHandler) PhoneCodes(c *gin.Context) {
	codes := h.phone.Codes()
	out := make([]phoneCode, 0, len(codes))
	for _, cc := range codes {
		out = append(out, phoneCode{Code: cc.Code, Label: cc.Label()})
	}
	c.JSON(http.StatusOK, gin.H{"items": out, "max_digits": forms.MaxPhoneDigits})
}

func (h *ChoicesHandler) Choices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sex":               forms.SexChoices,
		"recognition_types": forms.RecognitionTypeChoices,
		"item_conditions":   forms.ConditionChoices,
	})
}
