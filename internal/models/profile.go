package models

import "time"

type Sex string

const (
	SexMale   Sex = "H"
	SexFemale Sex = "M"
)

// PersonalProfile is the aggregate root every CV record hangs from.
type PersonalProfile struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;uniqueIndex" json:"user_id"`

	LastNames     string     `gorm:"column:last_names;type:text" json:"last_names"`
	FirstNames    string     `gorm:"column:first_names;type:text" json:"first_names"`
	Nationality   string     `gorm:"column:nationality;type:text" json:"nationality"`
	BirthPlace    string     `gorm:"column:birth_place;type:text" json:"birth_place"`
	BirthDate     *time.Time `gorm:"column:birth_date;type:date" json:"birth_date,omitempty"`
	NationalID    string     `gorm:"column:national_id;type:text" json:"national_id"`
	Sex           Sex        `gorm:"column:sex;type:text" json:"sex"`
	MaritalStatus string     `gorm:"column:marital_status;type:text" json:"marital_status"`
	DriverLicense string     `gorm:"column:driver_license;type:text" json:"driver_license"`

	// Phone is stored as "<calling code> <digits>".
	Phone       string `gorm:"column:phone;type:text" json:"phone"`
	Landline    string `gorm:"column:landline;type:text" json:"landline"`
	Email       string `gorm:"column:email;type:text" json:"email"`
	HomeAddress string `gorm:"column:home_address;type:text" json:"home_address"`
	WorkAddress string `gorm:"column:work_address;type:text" json:"work_address"`
	Website     string `gorm:"column:website;type:text" json:"website"`

	ProfileDescription string `gorm:"column:profile_description;type:text" json:"profile_description"`
	Photo              string `gorm:"column:photo;type:text" json:"photo"`
	ProfileActive      bool   `gorm:"column:profile_active" json:"profile_active"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PersonalProfile) TableName() string { return "personal_profiles" }

func (p *PersonalProfile) FullName() string {
	switch {
	case p.FirstNames == "":
		return p.LastNames
	case p.LastNames == "":
		return p.FirstNames
	}
	return p.FirstNames + " " + p.LastNames
}
