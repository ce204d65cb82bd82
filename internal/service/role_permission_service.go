package service

import (
	"context"
	"errors"

	"leavehub/internal/model"
	"leavehub/internal/repository"
	"leavehub/internal/websocket"
	"leavehub/pkg/apperror"
	"leavehub/pkg/pagination"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// RolePermissionPage is one page of grants plus the pagination bookkeeping.
type RolePermissionPage struct {
	Items []RolePermissionDTO `json:"items"`
	Meta  pagination.Meta     `json:"meta"`
}

type RolePermissionService interface {
	FindByID(ctx context.Context, id uint) (*RolePermissionDTO, error)
	FindByFields(ctx context.Context, fields map[string]interface{}) (*RolePermissionDTO, error)
	FindAndCount(ctx context.Context, page, limit int) (*RolePermissionPage, error)
	Save(ctx context.Context, dto *RolePermissionDTO, creator string) (*RolePermissionDTO, error)
	Update(ctx context.Context, dto *RolePermissionDTO, updater string, id uint) (*RolePermissionDTO, error)
	DeleteByID(ctx context.Context, id uint) error
	FindByRoleID(ctx context.Context, roleID int) ([]RolePermissionDTO, error)
}

type rolePermissionService struct {
	repo  repository.RolePermissionRepository
	audit AuditService
	hub   *websocket.Hub
	log   zerolog.Logger
}

// NewRolePermissionService wires the grant service. Audit and hub may be nil;
// both are best-effort side channels, not part of the operation contract.
func NewRolePermissionService(repo repository.RolePermissionRepository, audit AuditService, hub *websocket.Hub, log zerolog.Logger) RolePermissionService {
	return &rolePermissionService{
		repo:  repo,
		audit: audit,
		hub:   hub,
		log:   log.With().Str("component", "role_permission_service").Logger(),
	}
}

// FindByID fetches one grant by primary key. Absence is exceptional here and
// surfaces as NotFound.
func (s *rolePermissionService) FindByID(ctx context.Context, id uint) (*RolePermissionDTO, error) {
	s.log.Debug().Uint("id", id).Msg("fetching role permission")

	rp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Uint("id", id).Msg("role permission lookup failed")
		return nil, classifyStorageError(err, "Role permission not found")
	}

	s.log.Debug().Uint("id", id).Msg("role permission found")
	return ToRolePermissionDTO(rp), nil
}

// FindByFields fetches one grant matching an arbitrary predicate. Unlike
// FindByID, absence is a normal empty result and yields nil without error.
func (s *rolePermissionService) FindByFields(ctx context.Context, fields map[string]interface{}) (*RolePermissionDTO, error) {
	s.log.Debug().Interface("fields", fields).Msg("querying role permission by fields")

	rp, err := s.repo.FindByFields(ctx, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.log.Warn().Err(err).Msg("role permission field query failed")
		return nil, apperror.Internal("Failed to query role permissions", err)
	}

	return ToRolePermissionDTO(rp), nil
}

// FindAndCount retrieves one page of grants, newest-first by id. Page is
// one-based; defaulting and clamping happen at the HTTP boundary.
func (s *rolePermissionService) FindAndCount(ctx context.Context, page, limit int) (*RolePermissionPage, error) {
	s.log.Debug().Int("page", page).Int("limit", limit).Msg("listing role permissions")

	rps, total, err := s.repo.FindAndCount(ctx, page, limit)
	if err != nil {
		s.log.Warn().Err(err).Msg("role permission listing failed")
		return nil, apperror.Internal("Failed to list role permissions", err)
	}

	items := make([]RolePermissionDTO, 0, len(rps))
	for i := range rps {
		items = append(items, *ToRolePermissionDTO(&rps[i]))
	}

	s.log.Debug().Int64("total", total).Int("count", len(items)).Msg("role permissions listed")
	return &RolePermissionPage{
		Items: items,
		Meta:  pagination.NewMeta(total, len(items), limit, page),
	}, nil
}

// Save persists a new grant. CreatedBy is stamped only when not already set;
// UpdatedBy is stamped on every save.
func (s *rolePermissionService) Save(ctx context.Context, dto *RolePermissionDTO, creator string) (*RolePermissionDTO, error) {
	s.log.Info().Str("creator", creator).Msg("creating role permission")

	rp := ToRolePermissionEntity(dto)
	if rp == nil {
		s.log.Error().Msg("role permission conversion yielded no entity")
		return nil, apperror.Internal("Failed to convert role permission", nil)
	}

	if creator != "" {
		if rp.CreatedBy == "" {
			rp.CreatedBy = creator
		}
		rp.UpdatedBy = creator
	}

	if err := s.repo.Save(ctx, rp); err != nil {
		s.log.Error().Err(err).Msg("role permission create failed")
		return nil, apperror.Internal("Failed to save role permission", err)
	}

	s.writeAuditLog(ctx, creator, model.ActionCreateRolePermission, rp)
	s.publish(websocket.EventRolePermissionCreated, rp.RoleID)

	s.log.Info().Uint("id", rp.ID).Int("roleId", rp.RoleID).Msg("role permission created")
	return ToRolePermissionDTO(rp), nil
}

// Update fully overwrites the grant identified by id with the DTO's fields.
// There is no field-level merge: omitted DTO fields end up zeroed.
//
// The existence check and the write are two separate storage calls without a
// transaction around them, so concurrent updates to the same id can race.
// Known gap; wrapping both in a transaction would change observable behavior.
func (s *rolePermissionService) Update(ctx context.Context, dto *RolePermissionDTO, updater string, id uint) (*RolePermissionDTO, error) {
	s.log.Info().Uint("id", id).Str("updater", updater).Msg("updating role permission")

	if id == 0 {
		s.log.Warn().Msg("role permission update rejected: missing id")
		return nil, apperror.BadRequest("ID is required for update")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Uint("id", id).Msg("role permission update target missing")
		return nil, classifyStorageError(err, "Role permission not found")
	}

	rp := ToRolePermissionEntity(dto)
	if rp == nil {
		s.log.Error().Msg("role permission conversion yielded no entity")
		return nil, apperror.Internal("Failed to convert role permission", nil)
	}

	rp.ID = id
	// CreatedBy/CreatedAt are stamped once at creation and never overwritten.
	rp.CreatedBy = existing.CreatedBy
	rp.CreatedAt = existing.CreatedAt
	if updater != "" {
		rp.UpdatedBy = updater
	}

	if err := s.repo.Save(ctx, rp); err != nil {
		s.log.Error().Err(err).Uint("id", id).Msg("role permission update failed")
		return nil, apperror.Internal("Failed to update role permission", err)
	}

	s.writeAuditLog(ctx, updater, model.ActionUpdateRolePermission, rp)
	s.publish(websocket.EventRolePermissionUpdated, rp.RoleID)

	s.log.Info().Uint("id", id).Msg("role permission updated")
	return ToRolePermissionDTO(rp), nil
}

// DeleteByID removes a grant. Zero affected rows means the grant never
// existed and surfaces as NotFound.
func (s *rolePermissionService) DeleteByID(ctx context.Context, id uint) error {
	s.log.Info().Uint("id", id).Msg("deleting role permission")

	rows, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Uint("id", id).Msg("role permission delete failed")
		return apperror.Internal("Failed to delete role permission", err)
	}
	if rows == 0 {
		s.log.Warn().Uint("id", id).Msg("role permission delete target missing")
		return apperror.NotFound("Role permission not found")
	}

	s.writeAuditLog(ctx, "", model.ActionDeleteRolePermission, &model.RolePermission{ID: id})
	s.publish(websocket.EventRolePermissionDeleted, 0)

	s.log.Info().Uint("id", id).Msg("role permission deleted")
	return nil
}

// FindByRoleID returns every grant of one role in storage order. No grants
// is a valid empty result.
func (s *rolePermissionService) FindByRoleID(ctx context.Context, roleID int) ([]RolePermissionDTO, error) {
	s.log.Debug().Int("roleId", roleID).Msg("fetching role permissions by role")

	rps, err := s.repo.FindByRoleID(ctx, roleID)
	if err != nil {
		s.log.Warn().Err(err).Int("roleId", roleID).Msg("role permission role query failed")
		return nil, apperror.Internal("Failed to query role permissions", err)
	}

	items := make([]RolePermissionDTO, 0, len(rps))
	for i := range rps {
		items = append(items, *ToRolePermissionDTO(&rps[i]))
	}
	return items, nil
}

func (s *rolePermissionService) writeAuditLog(ctx context.Context, actor, action string, rp *model.RolePermission) {
	if s.audit == nil {
		return
	}
	if actor == "" {
		actor = "system"
	}
	s.audit.Log(ctx, actor, action, rp)
}

func (s *rolePermissionService) publish(event string, roleID int) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(websocket.Event{Event: event, RoleID: roleID})
}

// classifyStorageError maps a storage fault onto the error taxonomy. Only
// this layer classifies; handlers render the classified status untouched.
func classifyStorageError(err error, notFoundMessage string) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(notFoundMessage)
	}
	return apperror.Internal("Unexpected storage error", err)
}
