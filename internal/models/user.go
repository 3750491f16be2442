package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Account stores the credentials for a staff member. Passwords are stored
// and compared as plain strings.
type Account struct {
	ID       uint   `json:"user_id" gorm:"primaryKey;autoIncrement;column:user_id"`
	Password string `json:"-" gorm:"size:20;not null"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Account) TableName() string {
	return "users"
}

// Profile stores the personal details for exactly one Account. The last name
// doubles as the login surname; it is indexed but not unique, so surname
// lookups take the first row found.
type Profile struct {
	ID          uint           `json:"-" gorm:"primaryKey;autoIncrement;column:user_details_id"`
	AccountID   uint           `json:"user_id" gorm:"column:user_id;not null"`
	FirstName   string         `json:"first_name" gorm:"size:50;not null"`
	LastName    string         `json:"last_name" gorm:"size:50;not null;index"`
	DateOfBirth datatypes.Date `json:"date_of_birth" gorm:"not null"`
	Province    string         `json:"province" gorm:"size:20;not null"`
	Gender      string         `json:"gender" gorm:"size:6;not null"`
	Facilitator bool           `json:"facilitator" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Profile) TableName() string {
	return "user_details"
}

// FullName returns "FirstName LastName".
func (p *Profile) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// DateLayout is the wire format for dates of birth.
const DateLayout = "2006-01-02"

// SAProvinces are the nine South African provinces accepted for a profile.
var SAProvinces = []string{
	"Eastern Cape",
	"Free State",
	"Gauteng",
	"KwaZulu-Natal",
	"Limpopo",
	"Mpumalanga",
	"North West",
	"Northern Cape",
	"Western Cape",
}

// Genders are the accepted gender values.
var Genders = []string{"Male", "Female", "Other"}

// IsValidProvince reports whether p is one of the nine provinces.
func IsValidProvince(p string) bool {
	for _, v := range SAProvinces {
		if v == p {
			return true
		}
	}
	return false
}

// IsValidGender reports whether g is an accepted gender value.
func IsValidGender(g string) bool {
	for _, v := range Genders {
		if v == g {
			return true
		}
	}
	return false
}
