package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionCreateRolePermission = "CREATE_ROLE_PERMISSION"
	ActionUpdateRolePermission = "UPDATE_ROLE_PERMISSION"
	ActionDeleteRolePermission = "DELETE_ROLE_PERMISSION"
)

// AuditLog tracks Who, What, and When for permission changes
type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Actor     string    `gorm:"type:varchar(100);not null;index" json:"actor"`
	Action    string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID  string    `gorm:"type:varchar(50);index" json:"entity_id"`
	Details   string    `gorm:"type:jsonb" json:"details"` // Serialized JSON payload of the action
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate assigns the ID app-side so the model works on every dialect.
func (a *AuditLog) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

