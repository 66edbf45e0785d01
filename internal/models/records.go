package models

import "time"

// Record is implemented by every child record of a PersonalProfile.
type Record interface {
	RecordID() string
	Assign(id, profileID string)
	IsActive() bool
}

// CertificateHolder is implemented by records that accept an uploaded certificate.
type CertificateHolder interface {
	SetCertificate(name string)
}

// Base holds the columns shared by all child records.
type Base struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ProfileID string    `gorm:"column:profile_id;type:uuid;index" json:"profile_id"`
	Active    bool      `gorm:"column:active" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (b *Base) RecordID() string { return b.ID }

func (b *Base) Assign(id, profileID string) {
	b.ID = id
	b.ProfileID = profileID
}

func (b *Base) IsActive() bool { return b.Active }

type WorkExperience struct {
	Base

	Position        string     `gorm:"column:position;type:text" json:"position"`
	CompanyName     string     `gorm:"column:company_name;type:text" json:"company_name"`
	CompanyLocation string     `gorm:"column:company_location;type:text" json:"company_location"`
	CompanyEmail    string     `gorm:"column:company_email;type:text" json:"company_email"`
	CompanyWebsite  string     `gorm:"column:company_website;type:text" json:"company_website"`
	ContactName     string     `gorm:"column:contact_name;type:text" json:"contact_name"`
	ContactPhone    string     `gorm:"column:contact_phone;type:text" json:"contact_phone"`
	StartDate       time.Time  `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate         *time.Time `gorm:"column:end_date;type:date" json:"end_date,omitempty"`
	Duties          string     `gorm:"column:duties;type:text" json:"duties"`
	Certificate     string     `gorm:"column:certificate;type:text" json:"certificate"`
}

func (WorkExperience) TableName() string { return "work_experiences" }

func (w *WorkExperience) SetCertificate(name string) { w.Certificate = name }

type RecognitionType string

const (
	RecognitionAcademic RecognitionType = "academico"
	RecognitionPublic   RecognitionType = "publico"
	RecognitionPrivate  RecognitionType = "privado"
)

// Label is the display name used on forms and in the rendered CV.
func (t RecognitionType) Label() string {
	switch t {
	case RecognitionAcademic:
		return "Académico"
	case RecognitionPublic:
		return "Público"
	case RecognitionPrivate:
		return "Privado"
	}
	return string(t)
}

type Recognition struct {
	Base

	Type          RecognitionType `gorm:"column:type;type:text" json:"type"`
	Date          time.Time       `gorm:"column:date;type:date" json:"date"`
	Description   string          `gorm:"column:description;type:text" json:"description"`
	SponsorEntity string          `gorm:"column:sponsor_entity;type:text" json:"sponsor_entity"`
	ContactName   string          `gorm:"column:contact_name;type:text" json:"contact_name"`
	ContactPhone  string          `gorm:"column:contact_phone;type:text" json:"contact_phone"`
	Certificate   string          `gorm:"column:certificate;type:text" json:"certificate"`
}

func (Recognition) TableName() string { return "recognitions" }

func (r *Recognition) SetCertificate(name string) { r.Certificate = name }

type CompletedCourse struct {
	Base

	Name          string     `gorm:"column:name;type:text" json:"name"`
	StartDate     time.Time  `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate       *time.Time `gorm:"column:end_date;type:date" json:"end_date,omitempty"`
	TotalHours    int        `gorm:"column:total_hours" json:"total_hours"`
	Description   string     `gorm:"column:description;type:text" json:"description"`
	SponsorEntity string     `gorm:"column:sponsor_entity;type:text" json:"sponsor_entity"`
	ContactName   string     `gorm:"column:contact_name;type:text" json:"contact_name"`
	ContactPhone  string     `gorm:"column:contact_phone;type:text" json:"contact_phone"`
	SponsorEmail  string     `gorm:"column:sponsor_email;type:text" json:"sponsor_email"`
	Certificate   string     `gorm:"column:certificate;type:text" json:"certificate"`
}

func (CompletedCourse) TableName() string { return "completed_courses" }

func (c *CompletedCourse) SetCertificate(name string) { c.Certificate = name }

type AcademicProduct struct {
	Base

	ResourceName string `gorm:"column:resource_name;type:text" json:"resource_name"`
	Classifier   string `gorm:"column:classifier;type:text" json:"classifier"`
	Description  string `gorm:"column:description;type:text" json:"description"`
}

func (AcademicProduct) TableName() string { return "academic_products" }

type LaborProduct struct {
	Base

	ProductName string    `gorm:"column:product_name;type:text" json:"product_name"`
	Date        time.Time `gorm:"column:date;type:date" json:"date"`
	Description string    `gorm:"column:description;type:text" json:"description"`
}

func (LaborProduct) TableName() string { return "labor_products" }

type ItemCondition string

const (
	ConditionGood ItemCondition = "bueno"
	ConditionFair ItemCondition = "regular"
)

func (c ItemCondition) Label() string {
	switch c {
	case ConditionGood:
		return "Bueno"
	case ConditionFair:
		return "Regular"
	}
	return string(c)
}

type GarageSaleItem struct {
	Base

	ProductName string        `gorm:"column:product_name;type:text" json:"product_name"`
	Condition   ItemCondition `gorm:"column:condition;type:text" json:"condition"`
	Description string        `gorm:"column:description;type:text" json:"description"`
	Value       float64       `gorm:"column:value;type:numeric(12,2)" json:"value"`
}

func (GarageSaleItem) TableName() string { return "garage_sale_items" }
