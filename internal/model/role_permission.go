package model

import "time"

// RolePermission stores one permission grant (or explicit denial) for a role.
// The table holds both values of ValueYN: a false row is a recorded denial,
// not the same thing as a missing row.
//
// There is deliberately no uniqueness constraint on (RoleID, PermissionID);
// callers may create duplicate grants and the admin UI deduplicates on read.
type RolePermission struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleID       int       `gorm:"not null;index" json:"roleId"`
	PermissionID string    `gorm:"type:varchar(100);not null" json:"permissionId"`
	ValueYN      bool      `gorm:"not null" json:"valueYn"`
	CreatedBy    string    `gorm:"type:varchar(100);default:'system'" json:"createdBy"`
	UpdatedBy    string    `gorm:"type:varchar(100);default:'system'" json:"updatedBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName keeps the table name aligned with the admin frontend's queries.
func (RolePermission) TableName() string {
	return "role_permissions"
}
