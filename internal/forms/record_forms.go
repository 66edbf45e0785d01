package forms

import (
	"strings"

	"github.com/yoockh/hojadevida/internal/models"
)

// RecordForm binds one child record of a profile.
type RecordForm[T any] interface {
	Validate() error
	Apply(*T) error
}

type WorkExperienceForm struct {
	Position        string `json:"position" binding:"required,max=100"`
	CompanyName     string `json:"company_name" binding:"required,max=100"`
	CompanyLocation string `json:"company_location" binding:"max=100"`
	CompanyEmail    string `json:"company_email" binding:"omitempty,email"`
	CompanyWebsite  string `json:"company_website" binding:"omitempty,url"`
	ContactName     string `json:"contact_name" binding:"max=100"`
	ContactPhone    string `json:"contact_phone" binding:"max=60"`
	StartDate       string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate         string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Duties          string `json:"duties"`
	Active          bool   `json:"active"`
}

func (f *WorkExperienceForm) Validate() error {
	var errs ValidationErrors
	parseRequiredDate("start_date", f.StartDate, &errs)
	parseOptionalDate("end_date", f.EndDate, &errs)
	return errs.Err()
}

func (f *WorkExperienceForm) Apply(w *models.WorkExperience) error {
	var errs ValidationErrors
	w.Position = strings.TrimSpace(f.Position)
	w.CompanyName = strings.TrimSpace(f.CompanyName)
	w.CompanyLocation = strings.TrimSpace(f.CompanyLocation)
	w.CompanyEmail = strings.TrimSpace(f.CompanyEmail)
	w.CompanyWebsite = strings.TrimSpace(f.CompanyWebsite)
	w.ContactName = strings.TrimSpace(f.ContactName)
	w.ContactPhone = strings.TrimSpace(f.ContactPhone)
	w.StartDate = parseRequiredDate("start_date", f.StartDate, &errs)
	w.EndDate = parseOptionalDate("end_date", f.EndDate, &errs)
	w.Duties = strings.TrimSpace(f.Duties)
	w.Active = f.Active
	return errs.Err()
}

type RecognitionForm struct {
	Type          string `json:"type" binding:"required,oneof=academico publico privado"`
	Date          string `json:"date" binding:"required,datetime=2006-01-02"`
	Description   string `json:"description"`
	SponsorEntity string `json:"sponsor_entity" binding:"required,max=100"`
	ContactName   string `json:"contact_name" binding:"max=100"`
	ContactPhone  string `json:"contact_phone" binding:"max=60"`
	Active        bool   `json:"active"`
}

func (f *RecognitionForm) Validate() error {
	var errs ValidationErrors
	if !validChoice(RecognitionTypeChoices, f.Type) {
		errs.Add("type", msgInvalidChoice)
	}
	parseRequiredDate("date", f.Date, &errs)
	return errs.Err()
}

func (f *RecognitionForm) Apply(r *models.Recognition) error {
	var errs ValidationErrors
	r.Type = models.RecognitionType(f.Type)
	r.Date = parseRequiredDate("date", f.Date, &errs)
	r.Description = strings.TrimSpace(f.Description)
	r.SponsorEntity = strings.TrimSpace(f.SponsorEntity)
	r.ContactName = strings.TrimSpace(f.ContactName)
	r.ContactPhone = strings.TrimSpace(f.ContactPhone)
	r.Active = f.Active
	return errs.Err()
}

type CourseForm struct {
	Name          string `json:"name" binding:"required,max=100"`
	StartDate     string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	TotalHours    int    `json:"total_hours" binding:"gte=0"`
	Description   string `json:"description"`
	SponsorEntity string `json:"sponsor_entity" binding:"required,max=100"`
	ContactName   string `json:"contact_name" binding:"max=100"`
	ContactPhone  string `json:"contact_phone" binding:"max=60"`
	SponsorEmail  string `json:"sponsor_email" binding:"omitempty,email"`
	Active        bool   `json:"active"`
}

func (f *CourseForm) Validate() error {
	var errs ValidationErrors
	parseRequiredDate("start_date", f.StartDate, &errs)
	parseOptionalDate("end_date", f.EndDate, &errs)
	if f.TotalHours < 0 {
		errs.Add("total_hours", "Asegúrese de que este valor sea mayor o igual a 0.")
	}
	return errs.Err()
}

func (f *CourseForm) Apply(c *models.CompletedCourse) error {
	var errs ValidationErrors
	c.Name = strings.TrimSpace(f.Name)
	c.StartDate = parseRequiredDate("start_date", f.StartDate, &errs)
	c.EndDate = parseOptionalDate("end_date", f.EndDate, &errs)
	c.TotalHours = f.TotalHours
	c.Description = strings.TrimSpace(f.Description)
	c.SponsorEntity = strings.TrimSpace(f.SponsorEntity)
	c.ContactName = strings.TrimSpace(f.ContactName)
	c.ContactPhone = strings.TrimSpace(f.ContactPhone)
	c.SponsorEmail = strings.TrimSpace(f.SponsorEmail)
	c.Active = f.Active
	return errs.Err()
}

type AcademicProductForm struct {
	ResourceName string `json:"resource_name" binding:"required,max=100"`
	Classifier   string `json:"classifier" binding:"required,max=100"`
	Description  string `json:"description"`
	Active       bool   `json:"active"`
}

func (f *AcademicProductForm) Validate() error { return nil }

func (f *AcademicProductForm) Apply(a *models.AcademicProduct) error {
	a.ResourceName = strings.TrimSpace(f.ResourceName)
	a.Classifier = strings.TrimSpace(f.Classifier)
	a.Description = strings.TrimSpace(f.Description)
	a.Active = f.Active
	return nil
}

type LaborProductForm struct {
	ProductName string `json:"product_name" binding:"required,max=100"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func (f *LaborProductForm) Validate() error {
	var errs ValidationErrors
	parseRequiredDate("date", f.Date, &errs)
	return errs.Err()
}

func (f *LaborProductForm) Apply(l *models.LaborProduct) error {
	var errs ValidationErrors
	l.ProductName = strings.TrimSpace(f.ProductName)
	l.Date = parseRequiredDate("date", f.Date, &errs)
	l.Description = strings.TrimSpace(f.Description)
	l.Active = f.Active
	return errs.Err()
}

type GarageSaleForm struct {
	ProductName string   `json:"product_name" binding:"required,max=100"`
	Condition   string   `json:"condition" binding:"required,oneof=bueno regular"`
	Description string   `json:"description"`
	Value       *float64 `json:"value" binding:"required,gte=0"`
	Active      bool     `json:"active"`
}

func (f *GarageSaleForm) Validate() error {
	var errs ValidationErrors
	if !validChoice(ConditionChoices, f.Condition) {
		errs.Add("condition", msgInvalidChoice)
	}
	if f.Value == nil {
		errs.Add("value", msgRequired)
	} else if *f.Value < 0 {
		errs.Add("value", "Asegúrese de que este valor sea mayor o igual a 0.")
	}
	return errs.Err()
}

func (f *GarageSaleForm) Apply(g *models.GarageSaleItem) error {
	if err := f.Validate(); err != nil {
		return err
	}
	g.ProductName = strings.TrimSpace(f.ProductName)
	g.Condition = models.ItemCondition(f.Condition)
	g.Description = strings.TrimSpace(f.Description)
	g.Value = *f.Value
	g.Active = f.Active
	return nil
}
