package model

import (
	"strings"
	"time"
)

const (
	userNameMin = 3
	userNameMax = 50
	userAgeMax  = 150
)

// User is a registered shop customer.
type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Age       *int       `json:"age,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	Name     string `json:"name" example:"john_doe"`
	Email    string `json:"email" example:"john@example.com"`
	Age      *int   `json:"age,omitempty" example:"30"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// Normalize trims surrounding whitespace from text fields.
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// Validate checks every field and reports all failures at once.
func (r CreateUserRequest) Validate() error {
	var c checker
	if c.required("name", r.Name) {
		c.length("name", r.Name, userNameMin, userNameMax)
	}
	c.email("email", r.Email)
	if r.Age != nil {
		c.between("age", *r.Age, 0, userAgeMax)
	}
	return c.err()
}

// UpdateUserRequest is the payload for PUT /users/{id}. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Age      *int    `json:"age,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Normalize trims surrounding whitespace from supplied text fields.
func (r *UpdateUserRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(*r.Email)
		r.Email = &v
	}
}

// Validate checks the supplied fields only.
func (r UpdateUserRequest) Validate() error {
	var c checker
	if r.Name != nil && c.required("name", *r.Name) {
		c.length("name", *r.Name, userNameMin, userNameMax)
	}
	if r.Email != nil {
		c.email("email", *r.Email)
	}
	if r.Age != nil {
		c.between("age", *r.Age, 0, userAgeMax)
	}
	return c.err()
}

// Apply copies the supplied fields onto u.
func (r UpdateUserRequest) Apply(u *User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Age != nil {
		age := *r.Age
		u.Age = &age
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}
