package domain

import "time"

// Person is one member of the fixed inspection roster. Identity is a
// generated opaque id; continuity across re-imports is by Reference
// (the employee reference number), never by id.
type Person struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name" validate:"required"`
	Reference string    `gorm:"column:reference;uniqueIndex" json:"reference" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Person) TableName() string { return "persons" }
