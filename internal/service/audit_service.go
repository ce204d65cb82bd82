package service

import (
	"context"
	"encoding/json"
	"strconv"

	"leavehub/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type AuditLogResponse struct {
	ID        string `json:"id"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	EntityID  string `json:"entity_id"`
	Details   string `json:"details"`
	CreatedAt string `json:"created_at"`
}

type AuditService interface {
	// Log records an audit row best-effort; a failed write never fails the
	// operation being audited.
	Log(ctx context.Context, actor, action string, rp *model.RolePermission)
	GetAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewAuditService creates a new AuditService instance
func NewAuditService(db *gorm.DB, log zerolog.Logger) AuditService {
	return &auditService{db: db, log: log.With().Str("component", "audit_service").Logger()}
}

func (s *auditService) Log(ctx context.Context, actor, action string, rp *model.RolePermission) {
	detailsJSON, _ := json.Marshal(rp)

	entry := model.AuditLog{
		Actor:    actor,
		Action:   action,
		EntityID: strconv.FormatUint(uint64(rp.ID), 10),
		Details:  string(detailsJSON),
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("failed to write audit log")
	}
}

// GetAuditLogs retrieves one page of audit rows, newest-first.
func (s *auditService) GetAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error) {
	var logs []model.AuditLog
	var total int64

	if err := s.db.WithContext(ctx).Model(&model.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := s.db.WithContext(ctx).Order("created_at desc").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, AuditLogResponse{
			ID:        l.ID.String(),
			Actor:     l.Actor,
			Action:    l.Action,
			EntityID:  l.EntityID,
			Details:   l.Details,
			CreatedAt: l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}
