package service

import (
	"testing"

	"leavehub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperNilInNilOut(t *testing.T) {
	assert.Nil(t, ToRolePermissionDTO(nil))
	assert.Nil(t, ToRolePermissionEntity(nil))
}

func TestMapperRoundTrip(t *testing.T) {
	entity := &model.RolePermission{
		ID:           42,
		RoleID:       7,
		PermissionID: "APPROVE_LEAVE",
		ValueYN:      true,
		CreatedBy:    "alice",
		UpdatedBy:    "bob",
	}

	dto := ToRolePermissionDTO(entity)
	require.NotNil(t, dto)
	assert.Equal(t, uint(42), dto.ID)
	assert.Equal(t, "alice", dto.CreatedBy)
	assert.Equal(t, "bob", dto.UpdatedBy)

	back := ToRolePermissionEntity(dto)
	require.NotNil(t, back)
	assert.Equal(t, entity.ID, back.ID)
	assert.Equal(t, entity.RoleID, back.RoleID)
	assert.Equal(t, entity.PermissionID, back.PermissionID)
	assert.Equal(t, entity.ValueYN, back.ValueYN)

	// Audit fields are the service's to stamp, never the DTO's to supply.
	assert.Empty(t, back.CreatedBy)
	assert.Empty(t, back.UpdatedBy)
}

func TestMapperTreatsZeroIDAsAbsent(t *testing.T) {
	entity := ToRolePermissionEntity(&RolePermissionDTO{
		ID:           0,
		RoleID:       1,
		PermissionID: "X",
		ValueYN:      false,
	})
	require.NotNil(t, entity)
	assert.Zero(t, entity.ID)
}
