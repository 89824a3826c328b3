package audit

import (
	"Finora-Backend/domain"
	"context"
)

type (
	AuditService interface {
		GetAuditLogs(ctx context.Context, userID string, page, limit int) ([]domain.AuditLogResponse, int64, error)
	}

	auditService struct {
		auditRepository AuditRepository
	}
)

func NewAuditService(auditRepository AuditRepository) AuditService {
	return &auditService{auditRepository: auditRepository}
}

func (s *auditService) GetAuditLogs(ctx context.Context, userID string, page, limit int) ([]domain.AuditLogResponse, int64, error) {
	entries, count, err := s.auditRepository.GetAuditLogs(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.AuditLogResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, domain.AuditLogResponse{
			ID:         entry.ID.String(),
			Action:     entry.Action,
			Resource:   entry.Resource,
			ResourceID: entry.ResourceID,
			Success:    entry.Success,
			Message:    entry.Message,
			IPAddress:  entry.IPAddress,
			CreatedAt:  entry.CreatedAt,
		})
	}
	return response, count, nil
}
