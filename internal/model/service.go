package model

import (
	"github.com/google/uuid"
)

type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)

// Service is a bookable offering in a company's catalog. Duration is free
// text for display; the calendar assumes a fixed one-hour slot regardless.
type Service struct {
	Base
	CompanyID   uuid.UUID     `json:"company_id" db:"company_id"`
	Name        string        `json:"name" db:"name"`
	Description string        `json:"description" db:"description"`
	Duration    string        `json:"duration" db:"duration"`
	Price       float64       `json:"price" db:"price"`
	Status      ServiceStatus `json:"status" db:"status"`
}

type CreateServiceRequest struct {
	CompanyID   uuid.UUID `json:"company_id" binding:"required"`
	Name        string    `json:"name" binding:"required,max=120"`
	Description string    `json:"description" binding:"max=1000"`
	Duration    string    `json:"duration" binding:"max=60"`
	Price       float64   `json:"price" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string        `json:"name" binding:"omitempty,max=120"`
	Description *string        `json:"description" binding:"omitempty,max=1000"`
	Duration    *string        `json:"duration" binding:"omitempty,max=60"`
	Price       *float64       `json:"price" binding:"omitempty,gt=0"`
	Status      *ServiceStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}
