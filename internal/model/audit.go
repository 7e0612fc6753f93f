package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLog records who changed what. Written best-effort by the services.
type AuditLog struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	UserID     uuid.UUID       `db:"user_id" json:"user_id"`
	CompanyID  uuid.UUID       `db:"company_id" json:"company_id"`
	Action     string          `db:"action" json:"action"`
	EntityType string          `db:"entity_type" json:"entity_type"`
	EntityID   uuid.UUID       `db:"entity_id" json:"entity_id"`
	Changes    json.RawMessage `db:"changes" json:"changes,omitempty"`
	Metadata   json.RawMessage `db:"metadata" json:"metadata,omitempty"`
	IPAddress  string          `db:"ip_address" json:"ip_address,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
