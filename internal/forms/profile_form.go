package forms

import (
	"strings"

	"github.com/yoockh/hojadevida/internal/models"
)

// ProfileForm is the personal data form. The phone arrives as two inputs.
type ProfileForm struct {
	LastNames     string `json:"last_names" binding:"required,max=60"`
	FirstNames    string `json:"first_names" binding:"required,max=60"`
	Nationality   string `json:"nationality" binding:"max=50"`
	BirthPlace    string `json:"birth_place" binding:"max=60"`
	BirthDate     string `json:"birth_date" binding:"omitempty,datetime=2006-01-02,notfuture"`
	NationalID    string `json:"national_id" binding:"required,max=20"`
	Sex           string `json:"sex" binding:"omitempty,oneof=H M"`
	MaritalStatus string `json:"marital_status" binding:"max=50"`
	DriverLicense string `json:"driver_license" binding:"max=10"`

	PhoneCode   string `json:"phone_code"`
	PhoneNumber string `json:"phone_number"`
	Landline    string `json:"landline" binding:"max=20"`
	Email       string `json:"email" binding:"omitempty,email"`
	HomeAddress string `json:"home_address" binding:"max=200"`
	WorkAddress string `json:"work_address" binding:"max=200"`
	Website     string `json:"website" binding:"omitempty,url"`

	ProfileDescription string `json:"profile_description"`
	ProfileActive      bool   `json:"profile_active"`
}

// ProfileInitial fills the form from a stored profile, splitting the phone.
func ProfileInitial(p *models.PersonalProfile, phone *PhoneField) ProfileForm {
	code, number := phone.Decompose(p.Phone)
	f := ProfileForm{
		LastNames:          p.LastNames,
		FirstNames:         p.FirstNames,
		Nationality:        p.Nationality,
		BirthPlace:         p.BirthPlace,
		NationalID:         p.NationalID,
		Sex:                string(p.Sex),
		MaritalStatus:      p.MaritalStatus,
		DriverLicense:      p.DriverLicense,
		PhoneCode:          code,
		PhoneNumber:        number,
		Landline:           p.Landline,
		Email:              p.Email,
		HomeAddress:        p.HomeAddress,
		WorkAddress:        p.WorkAddress,
		Website:            p.Website,
		ProfileDescription: p.ProfileDescription,
		ProfileActive:      p.ProfileActive,
	}
	if p.BirthDate != nil {
		f.BirthDate = p.BirthDate.Format(DateLayout)
	}
	return f
}

func (f *ProfileForm) Validate() error {
	var errs ValidationErrors
	if d := parseOptionalDate("birth_date", f.BirthDate, &errs); d != nil && d.After(Today()) {
		errs.Add("birth_date", msgBirthInFuture)
	}
	if _, err := DefaultPhoneField().Clean(f.PhoneCode, f.PhoneNumber); err != nil {
		errs.Append(err)
	}
	return errs.Err()
}

// Apply copies the cleaned form onto p. Call Validate first.
func (f *ProfileForm) Apply(p *models.PersonalProfile) error {
	if err := f.Validate(); err != nil {
		return err
	}
	var errs ValidationErrors
	phone, _ := DefaultPhoneField().Clean(f.PhoneCode, f.PhoneNumber)

	p.LastNames = strings.TrimSpace(f.LastNames)
	p.FirstNames = strings.TrimSpace(f.FirstNames)
	p.Nationality = strings.TrimSpace(f.Nationality)
	p.BirthPlace = strings.TrimSpace(f.BirthPlace)
	p.BirthDate = parseOptionalDate("birth_date", f.BirthDate, &errs)
	p.NationalID = strings.TrimSpace(f.NationalID)
	p.Sex = models.Sex(f.Sex)
	p.MaritalStatus = strings.TrimSpace(f.MaritalStatus)
	p.DriverLicense = strings.TrimSpace(f.DriverLicense)
	p.Phone = phone
	p.Landline = strings.TrimSpace(f.Landline)
	p.Email = strings.TrimSpace(f.Email)
	p.HomeAddress = strings.TrimSpace(f.HomeAddress)
	p.WorkAddress = strings.TrimSpace(f.WorkAddress)
	p.Website = strings.TrimSpace(f.Website)
	p.ProfileDescription = strings.TrimSpace(f.ProfileDescription)
	p.ProfileActive = f.ProfileActive
	return errs.Err()
}
