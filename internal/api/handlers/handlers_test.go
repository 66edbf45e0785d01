package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/hojadevida/internal/forms"
	"github.com/yoockh/hojadevida/internal/models"
	"github.com/yoockh/hojadevida/internal/services"
	"github.com/yoockh/hojadevida/internal/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := forms.RegisterGinValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeProfiles struct {
	saved *forms.ProfileForm
	photo services.Upload
}

func (f *fakeProfiles) GetMe(_ context.Context, userID string) (*models.PersonalProfile, error) {
	if userID != "u1" {
		return nil, utils.E(utils.CodeNotFound, "ProfileService.GetMe", "profile not found", utils.ErrNotFound)
	}
	return &models.PersonalProfile{ID: "p1", UserID: "u1", FirstNames: "Ana", Phone: "+593 991234567"}, nil
}

func (f *fakeProfiles) Save(_ context.Context, userID string, form *forms.ProfileForm) (*models.PersonalProfile, error) {
	f.saved = form
	p := &models.PersonalProfile{ID: "p1", UserID: userID}
	return p, form.Apply(p)
}

func (f *fakeProfiles) SetPhoto(_ context.Context, userID string, up services.Upload) (*models.PersonalProfile, error) {
	f.photo = up
	return &models.PersonalProfile{ID: "p1", UserID: userID, Photo: "photos/u1/x.png"}, nil
}

type fakeExperiences struct {
	created []models.WorkExperience
}

func (f *fakeExperiences) List(context.Context, string) ([]models.WorkExperience, error) {
	return f.created, nil
}

func (f *fakeExperiences) Create(_ context.Context, _ string, form forms.RecordForm[models.WorkExperience]) (*models.WorkExperience, error) {
	var w models.WorkExperience
	if err := form.Apply(&w); err != nil {
		return nil, utils.Invalid("RecordService.Create", "invalid form data", nil, err)
	}
	w.ID = "e1"
	f.created = append(f.created, w)
	return &w, nil
}

func (f *fakeExperiences) Update(_ context.Context, _ string, id string, _ forms.RecordForm[models.WorkExperience]) (*models.WorkExperience, error) {
	return nil, utils.E(utils.CodeNotFound, "RecordService.Update", "experience not found", utils.ErrNotFound)
}

func (f *fakeExperiences) Delete(_ context.Context, _ string, id string) error {
	if id != "e1" {
		return utils.E(utils.CodeNotFound, "RecordService.Delete", "experience not found", utils.ErrNotFound)
	}
	return nil
}

func (f *fakeExperiences) AttachCertificate(_ context.Context, _ string, id string, up services.Upload) (*models.WorkExperience, error) {
	return &models.WorkExperience{Base: models.Base{ID: id}, Certificate: "certificates/u1/" + up.Filename}, nil
}

type fakeResume struct{}

func (fakeResume) Generate(_ context.Context, userID string) (*services.Document, error) {
	return &services.Document{Filename: "hoja_de_vida_ana.pdf", PDF: []byte("%PDF-1.4 fake"), Pages: 3}, nil
}

func (fakeResume) Exports(context.Context, string, int64) ([]models.ExportRecord, error) {
	return nil, utils.E(utils.CodeUnavailable, "ResumeService.Exports", "export history is disabled", nil)
}

func newRouter(userID string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	return r
}

func do(r http.Handler, method, path string, body []byte, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) APIError {
	t.Helper()
	var e APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestProfileHandler(t *testing.T) {
	svc := &fakeProfiles{}
	h := NewProfileHandler(svc, nil)

	t.Run("unauthenticated", func(t *testing.T) {
		r := newRouter("")
		r.GET("/profile/me", h.Me)
		w := do(r, http.MethodGet, "/profile/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me splits phone", func(t *testing.T) {
		r := newRouter("u1")
		r.GET("/profile/me", h.Me)
		w := do(r, http.MethodGet, "/profile/me", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "+593", resp.Form.PhoneCode)
		assert.Equal(t, "991234567", resp.Form.PhoneNumber)
	})

	t.Run("not found", func(t *testing.T) {
		r := newRouter("u2")
		r.GET("/profile/me", h.Me)
		w := do(r, http.MethodGet, "/profile/me", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update reports fields", func(t *testing.T) {
		r := newRouter("u1")
		r.PUT("/profile/me", h.Update)
		body := []byte(`{"first_names":"Ana","sex":"X","email":"nope"}`)
		w := do(r, http.MethodPut, "/profile/me", body, "application/json")
		require.Equal(t, http.StatusBadRequest, w.Code)

		e := decodeError(t, w)
		assert.Equal(t, utils.CodeInvalidArgument, e.Code)
		assert.Contains(t, e.Fields, "last_names")
		assert.Contains(t, e.Fields, "national_id")
		assert.Contains(t, e.Fields, "sex")
		assert.Contains(t, e.Fields, "email")
		assert.Nil(t, svc.saved)
	})

	t.Run("update malformed json", func(t *testing.T) {
		r := newRouter("u1")
		r.PUT("/profile/me", h.Update)
		w := do(r, http.MethodPut, "/profile/me", []byte(`{"first_names":`), "application/json")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, decodeError(t, w).Fields)
	})

	t.Run("update ok", func(t *testing.T) {
		r := newRouter("u1")
		r.PUT("/profile/me", h.Update)
		body := []byte(`{"first_names":"Ana","last_names":"Vera","national_id":"1710000000","phone_code":"+593","phone_number":"99 123 4567"}`)
		w := do(r, http.MethodPut, "/profile/me", body, "application/json")
		require.Equal(t, http.StatusOK, w.Code)

		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "+593 991234567", resp.Profile.Phone)
	})

	t.Run("photo requires file", func(t *testing.T) {
		r := newRouter("u1")
		r.PUT("/profile/photo", h.Photo)
		w := do(r, http.MethodPut, "/profile/photo", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Fields, "photo")
	})
}

func multipartBody(t *testing.T, field, name string, data []byte) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf.Bytes(), mw.FormDataContentType()
}

func TestRecordHandler(t *testing.T) {
	svc := &fakeExperiences{}
	h := NewRecordHandler[models.WorkExperience, forms.WorkExperienceForm]("Experience", svc, true)
	r := newRouter("u1")
	r.GET("/x", h.List)
	r.POST("/x", h.Create)
	r.PUT("/x/:id", h.Update)
	r.DELETE("/x/:id", h.Delete)
	r.PUT("/x/:id/certificate", h.AttachCertificate)

	w := do(r, http.MethodPost, "/x", []byte(`{"position":"Dev"}`), "application/json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	e := decodeError(t, w)
	assert.Contains(t, e.Fields, "company_name")
	assert.Contains(t, e.Fields, "start_date")

	w = do(r, http.MethodPost, "/x", []byte(`{"position":"Dev","company_name":"Acme","start_date":"2020-02-30"}`), "application/json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Fields, "start_date")

	w = do(r, http.MethodPost, "/x", []byte(`{"position":"Dev","company_name":"Acme","start_date":"2020-02-10","active":true}`), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, svc.created, 1)
	assert.Nil(t, svc.created[0].EndDate)

	w = do(r, http.MethodGet, "/x", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"position":"Dev"`)

	w = do(r, http.MethodPut, "/x/e9", []byte(`{"position":"Dev","company_name":"Acme","start_date":"2020-02-10"}`), "application/json")
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/x/e1", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/x/e2", nil, "").Code)

	body, ct := multipartBody(t, "certificate", "cert.pdf", []byte("%PDF-1.4"))
	w = do(r, http.MethodPut, "/x/e1/certificate", body, ct)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "certificates/u1/cert.pdf")

	assert.True(t, h.AcceptsCertificates())
}

func TestCVHandler(t *testing.T) {
	h := NewCVHandler(fakeResume{})
	r := newRouter("u1")
	r.GET("/cv/pdf", h.PDF)
	r.GET("/cv/exports", h.Exports)

	w := do(r, http.MethodGet, "/cv/pdf", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="hoja_de_vida_ana.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "3", w.Header().Get("X-Page-Count"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))

	w = do(r, http.MethodGet, "/cv/pdf?inline=1", nil, "")
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "inline;"))

	w = do(r, http.MethodGet, "/cv/exports", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestChoicesHandler(t *testing.T) {
	h := NewChoicesHandler(nil)
	r := newRouter("")
	r.GET("/phone/codes", h.PhoneCodes)
	r.GET("/choices", h.Choices)

	w := do(r, http.MethodGet, "/phone/codes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Items     []phoneCode `json:"items"`
		MaxDigits int         `json:"max_digits"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, len(forms.CountryCodes))
	assert.Contains(t, resp.Items, phoneCode{Code: "+593", Label: "+593 Ecuador"})
	assert.Equal(t, forms.MaxPhoneDigits, resp.MaxDigits)

	w = do(r, http.MethodGet, "/choices", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"academico"`)
}
