package audit

import (
	"Finora-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AuditRepository interface {
		CreateAuditLog(ctx context.Context, entry *entities.AuditLog) error
		GetAuditLogs(ctx context.Context, userID string, page, limit int) ([]*entities.AuditLog, int64, error)
	}

	auditRepository struct {
		db *gorm.DB
	}
)

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) CreateAuditLog(ctx context.Context, entry *entities.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) GetAuditLogs(ctx context.Context, userID string, page, limit int) ([]*entities.AuditLog, int64, error) {
	var entries []*entities.AuditLog
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.AuditLog{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}
