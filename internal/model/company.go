package model

import (
	"github.com/google/uuid"
)

type CompanyStatus string

const (
	CompanyStatusPending  CompanyStatus = "pending"
	CompanyStatusActive   CompanyStatus = "active"
	CompanyStatusInactive CompanyStatus = "inactive"
)

func (s CompanyStatus) Valid() bool {
	switch s {
	case CompanyStatusPending, CompanyStatusActive, CompanyStatusInactive:
		return true
	}
	return false
}

// Company is a tenant: one owner account, a staff roster, a service catalog
// and the appointments booked against it. Created pending; only an admin
// moves it to active or inactive.
type Company struct {
	Base
	OwnerUserID uuid.UUID     `json:"owner_user_id" db:"owner_user_id"`
	Name        string        `json:"name" db:"name"`
	Email       string        `json:"email" db:"email"`
	Phone       string        `json:"phone" db:"phone"`
	Address     string        `json:"address" db:"address"`
	Category    *string       `json:"category,omitempty" db:"category"`
	Subcategory *string       `json:"subcategory,omitempty" db:"subcategory"`
	Status      CompanyStatus `json:"status" db:"status"`
}

type CreateCompanyRequest struct {
	Name        string  `json:"name" binding:"required,max=120"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       string  `json:"phone" binding:"omitempty,max=32"`
	Address     string  `json:"address" binding:"omitempty,max=250"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=120"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=32"`
	Address     *string `json:"address" binding:"omitempty,max=250"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
}

type UpdateCompanyStatusRequest struct {
	Status CompanyStatus `json:"status" binding:"required,oneof=active inactive"`
}
