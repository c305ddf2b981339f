package models

import (
	"strings"
	"time"
)

// ValidationError reports a required field that was missing or empty in a
// form submission.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// Inquiry represents a submission from the landing page inquiry form
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"not null" json:"name" binding:"required"`
	Email     string    `gorm:"not null;index" json:"email" binding:"required"`
	Phone     string    `json:"phone"`
	Interest  string    `json:"interest"`
	Message   string    `gorm:"type:text;not null" json:"message" binding:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Inquiry
func (Inquiry) TableName() string {
	return "inquiries"
}

// Validate checks that all required inquiry fields are present and non-empty
func (i *Inquiry) Validate() error {
	return checkRequired([]requiredField{
		{"name", i.Name},
		{"email", i.Email},
		{"message", i.Message},
	})
}

// Contact represents a submission from the contact page form. Trip dates and
// pickup type are stored verbatim as the client sent them; range consistency
// is the client's responsibility.
type Contact struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	Name       string    `gorm:"not null" json:"name" binding:"required"`
	Email      string    `gorm:"not null;index" json:"email" binding:"required"`
	Phone      string    `json:"phone"`
	Interest   string    `json:"interest"`
	Message    string    `gorm:"type:text;not null" json:"message" binding:"required"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	PickupType string    `json:"pickupType"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// Validate checks that all required contact fields are present and non-empty
func (c *Contact) Validate() error {
	return checkRequired([]requiredField{
		{"name", c.Name},
		{"email", c.Email},
		{"message", c.Message},
	})
}

type requiredField struct {
	name  string
	value string
}

func checkRequired(fields []requiredField) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}
