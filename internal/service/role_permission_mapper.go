package service

import "leavehub/internal/model"

// RolePermissionDTO is the external shape of a grant, used both for request
// bodies and responses.
type RolePermissionDTO struct {
	ID           uint   `json:"id,omitempty"`
	RoleID       int    `json:"roleId"`
	PermissionID string `json:"permissionId"`
	ValueYN      bool   `json:"valueYn"`
	CreatedBy    string `json:"createdBy,omitempty"`
	UpdatedBy    string `json:"updatedBy,omitempty"`
}

// ToRolePermissionDTO converts a stored grant to its external shape.
// A nil entity maps to nil.
func ToRolePermissionDTO(rp *model.RolePermission) *RolePermissionDTO {
	if rp == nil {
		return nil
	}
	return &RolePermissionDTO{
		ID:           rp.ID,
		RoleID:       rp.RoleID,
		PermissionID: rp.PermissionID,
		ValueYN:      rp.ValueYN,
		CreatedBy:    rp.CreatedBy,
		UpdatedBy:    rp.UpdatedBy,
	}
}

// ToRolePermissionEntity converts the external shape to a fresh entity.
// A nil DTO maps to nil. Audit fields are never taken from the DTO; the
// service stamps them. The ID is carried over only when non-zero, so an
// explicit id of 0 behaves like no id at all — a quirk kept for
// compatibility with existing clients.
func ToRolePermissionEntity(dto *RolePermissionDTO) *model.RolePermission {
	if dto == nil {
		return nil
	}
	rp := &model.RolePermission{
		RoleID:       dto.RoleID,
		PermissionID: dto.PermissionID,
		ValueYN:      dto.ValueYN,
	}
	if dto.ID != 0 {
		rp.ID = dto.ID
	}
	return rp
}
