package domain

import (
	"time"
)

var (
	MessageSuccessGetAuditLogs = "audit logs retrieved successfully"

	MessageFailedGetAuditLogs = "failed to retrieve audit logs"
)

type (
	AuditLogResponse struct {
		ID         string    `json:"id"`
		Action     string    `json:"action"`
		Resource   string    `json:"resource"`
		ResourceID string    `json:"resource_id,omitempty"`
		Success    bool      `json:"success"`
		Message    string    `json:"message,omitempty"`
		IPAddress  string    `json:"ip_address,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
