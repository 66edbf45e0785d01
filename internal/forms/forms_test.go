package forms

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/hojadevida/internal/models"
)

func validProfileForm() ProfileForm {
	return ProfileForm{
		LastNames:   "Chávez",
		FirstNames:  "Amy",
		NationalID:  "1312345678",
		BirthDate:   "1995-04-12",
		Sex:         "M",
		PhoneCode:   "+593",
		PhoneNumber: "099 123 4567",
		Email:       "amy@example.com",
	}
}

func TestProfileFormBinding(t *testing.T) {
	v := NewValidator()
	tomorrow := Today().AddDate(0, 0, 1).Format(DateLayout)

	tests := []struct {
		name      string
		mutate    func(f *ProfileForm)
		wantField string
	}{
		{"valid", func(f *ProfileForm) {}, ""},
		{"missing last names", func(f *ProfileForm) { f.LastNames = "" }, "last_names"},
		{"missing national id", func(f *ProfileForm) { f.NationalID = "" }, "national_id"},
		{"birth date in future", func(f *ProfileForm) { f.BirthDate = tomorrow }, "birth_date"},
		{"birth date malformed", func(f *ProfileForm) { f.BirthDate = "12/04/1995" }, "birth_date"},
		{"bad sex choice", func(f *ProfileForm) { f.Sex = "X" }, "sex"},
		{"bad email", func(f *ProfileForm) { f.Email = "not-an-email" }, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validProfileForm()
			tt.mutate(&f)

			err := v.Struct(&f)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			verrs, ok := AsValidation(err)
			require.True(t, ok)
			assert.Contains(t, verrs.Fields(), tt.wantField)
		})
	}
}

func TestProfileFormValidate(t *testing.T) {
	f := validProfileForm()
	require.NoError(t, f.Validate())

	f.BirthDate = Today().AddDate(0, 0, 1).Format(DateLayout)
	f.PhoneNumber = strings.Repeat("1", 13)
	err := f.Validate()
	require.Error(t, err)

	verrs, ok := AsValidation(err)
	require.True(t, ok)
	fields := verrs.Fields()
	assert.Equal(t, msgBirthInFuture, fields["birth_date"])
	assert.Equal(t, msgPhoneTooLong, fields["phone"])
}

func TestProfileFormTodayIsAllowed(t *testing.T) {
	f := validProfileForm()
	f.BirthDate = Today().Format(DateLayout)
	assert.NoError(t, f.Validate())
	assert.NoError(t, NewValidator().Struct(&f))
}

func TestProfileFormApply(t *testing.T) {
	f := validProfileForm()
	f.FirstNames = "  Amy  "

	var p models.PersonalProfile
	require.NoError(t, f.Apply(&p))

	assert.Equal(t, "Amy", p.FirstNames)
	assert.Equal(t, "+593 0991234567", p.Phone)
	require.NotNil(t, p.BirthDate)
	assert.Equal(t, time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC), *p.BirthDate)

	initial := ProfileInitial(&p, DefaultPhoneField())
	assert.Equal(t, "+593", initial.PhoneCode)
	assert.Equal(t, "0991234567", initial.PhoneNumber)
	assert.Equal(t, "1995-04-12", initial.BirthDate)
}

func TestRecordFormsRequiredFields(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		form   any
		fields []string
	}{
		{"work experience", &WorkExperienceForm{}, []string{"position", "company_name", "start_date"}},
		{"recognition", &RecognitionForm{}, []string{"type", "date", "sponsor_entity"}},
		{"course", &CourseForm{}, []string{"name", "start_date", "sponsor_entity"}},
		{"academic product", &AcademicProductForm{}, []string{"resource_name", "classifier"}},
		{"labor product", &LaborProductForm{}, []string{"product_name", "date"}},
		{"garage sale", &GarageSaleForm{}, []string{"product_name", "condition", "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verrs, ok := AsValidation(v.Struct(tt.form))
			require.True(t, ok)
			for _, field := range tt.fields {
				assert.Equal(t, msgRequired, verrs.Fields()[field], field)
			}
		})
	}
}

func TestRecognitionFormChoices(t *testing.T) {
	v := NewValidator()
	f := RecognitionForm{Type: "nobel", Date: "2024-05-01", SponsorEntity: "ULEAM"}

	verrs, ok := AsValidation(v.Struct(&f))
	require.True(t, ok)
	assert.Equal(t, msgInvalidChoice, verrs.Fields()["type"])

	f.Type = string(models.RecognitionAcademic)
	require.NoError(t, v.Struct(&f))

	var r models.Recognition
	require.NoError(t, f.Apply(&r))
	assert.Equal(t, "Académico", r.Type.Label())
	assert.Equal(t, 2024, r.Date.Year())
}

func TestWorkExperienceFormCourseDatesNotRestricted(t *testing.T) {
	future := Today().AddDate(1, 0, 0).Format(DateLayout)
	f := WorkExperienceForm{Position: "Dev", CompanyName: "ACME", StartDate: future}
	require.NoError(t, NewValidator().Struct(&f))
	require.NoError(t, f.Validate())

	var w models.WorkExperience
	require.NoError(t, f.Apply(&w))
	assert.Nil(t, w.EndDate)
}

func TestGarageSaleFormValue(t *testing.T) {
	v := NewValidator()
	neg := -1.0
	f := GarageSaleForm{ProductName: "Bicicleta", Condition: "bueno", Value: &neg}

	verrs, ok := AsValidation(v.Struct(&f))
	require.True(t, ok)
	assert.Contains(t, verrs.Fields(), "value")
	require.Error(t, f.Validate())

	price := 120.5
	f.Value = &price
	require.NoError(t, v.Struct(&f))

	var item models.GarageSaleItem
	require.NoError(t, f.Apply(&item))
	assert.Equal(t, 120.5, item.Value)
	assert.Equal(t, "Bueno", item.Condition.Label())
}

func TestCheckCertificate(t *testing.T) {
	pdf := []byte("%PDF-1.4\n...")

	tests := []struct {
		name    string
		file    string
		head    []byte
		size    int64
		wantErr string
	}{
		{"valid pdf", "cert.pdf", pdf, 100, ""},
		{"mixed case extension", "cert.PDF", pdf, 100, ""},
		{"jpg extension", "photo.jpg", pdf, 100, msgOnlyPDF},
		{"pdf name but not pdf bytes", "fake.pdf", []byte("\x89PNG"), 100, msgOnlyPDF},
		{"empty", "cert.pdf", nil, 0, msgEmptyFile},
		{"too large", "cert.pdf", pdf, MaxCertificateBytes + 1, msgFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCertificate(tt.file, tt.head, tt.size)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheckPhoto(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	ct, err := CheckPhoto(png, int64(len(png)))
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	_, err = CheckPhoto([]byte("%PDF-1.4"), 8)
	assert.Error(t, err)
}
