package converter

import (
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
)

// AuditLogToResponse lifts the entity name and numeric id out of the entry's
// metadata so clients can filter the trail without reading old/new values.
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	res := &dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
	res.Entity, _ = log.Metadata["entity"].(string)
	res.EntityID = metadataEntityID(log.Metadata["entity_id"])
	return res
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}

// metadataEntityID accepts the id as written (uint) or as decoded from the
// stored JSON column (float64).
func metadataEntityID(v interface{}) uint {
	switch id := v.(type) {
	case uint:
		return id
	case float64:
		if id < 0 {
			return 0
		}
		return uint(id)
	default:
		return 0
	}
}
