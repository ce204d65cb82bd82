package repository

import (
	"context"

	"leavehub/internal/model"

	"gorm.io/gorm"
)

type RolePermissionRepository interface {
	Save(ctx context.Context, rp *model.RolePermission) error
	FindByID(ctx context.Context, id uint) (*model.RolePermission, error)
	FindByFields(ctx context.Context, fields map[string]interface{}) (*model.RolePermission, error)
	FindAndCount(ctx context.Context, page, limit int) ([]model.RolePermission, int64, error)
	FindByRoleID(ctx context.Context, roleID int) ([]model.RolePermission, error)
	DeleteByID(ctx context.Context, id uint) (int64, error)
}

type rolePermissionRepository struct {
	db *gorm.DB
}

func NewRolePermissionRepository(db *gorm.DB) RolePermissionRepository {
	return &rolePermissionRepository{db: db}
}

// Save inserts when the primary key is unset and fully overwrites the row
// otherwise. There is no field-level merge.
func (r *rolePermissionRepository) Save(ctx context.Context, rp *model.RolePermission) error {
	return r.db.WithContext(ctx).Save(rp).Error
}

func (r *rolePermissionRepository) FindByID(ctx context.Context, id uint) (*model.RolePermission, error) {
	var rp model.RolePermission
	if err := r.db.WithContext(ctx).First(&rp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rp, nil
}

func (r *rolePermissionRepository) FindByFields(ctx context.Context, fields map[string]interface{}) (*model.RolePermission, error) {
	var rp model.RolePermission
	if err := r.db.WithContext(ctx).Where(fields).First(&rp).Error; err != nil {
		return nil, err
	}
	return &rp, nil
}

// FindAndCount retrieves one page ordered newest-first. Page is one-based;
// clamping is the caller's job.
func (r *rolePermissionRepository) FindAndCount(ctx context.Context, page, limit int) ([]model.RolePermission, int64, error) {
	var rps []model.RolePermission
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.RolePermission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).Order("id desc").Offset(offset).Limit(limit).Find(&rps).Error; err != nil {
		return nil, 0, err
	}

	return rps, total, nil
}

// FindByRoleID returns the role's grants in storage order.
func (r *rolePermissionRepository) FindByRoleID(ctx context.Context, roleID int) ([]model.RolePermission, error) {
	var rps []model.RolePermission
	if err := r.db.WithContext(ctx).Where("role_id = ?", roleID).Find(&rps).Error; err != nil {
		return nil, err
	}
	return rps, nil
}

// DeleteByID removes the row and reports how many rows were affected so the
// service can distinguish a miss from a hit.
func (r *rolePermissionRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RolePermission{})
	return res.RowsAffected, res.Error
}
