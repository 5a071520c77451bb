package converter

import (
	"testing"

	"go-medical-appointment/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAuditLogToResponse_EntityFromMetadata(t *testing.T) {
	tests := []struct {
		name       string
		metadata   entity.JSON
		wantEntity string
		wantID     uint
	}{
		{"written", entity.JSON{"entity": "doctor", "entity_id": uint(4)}, "doctor", 4},
		{"decoded", entity.JSON{"entity": "appointment", "entity_id": float64(12)}, "appointment", 12},
		{"missing", entity.JSON{}, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := AuditLogToResponse(&entity.AuditLog{ID: 1, Action: "x", Metadata: tt.metadata})
			assert.Equal(t, tt.wantEntity, res.Entity)
			assert.Equal(t, tt.wantID, res.EntityID)
		})
	}
	assert.Nil(t, AuditLogToResponse(nil))
}
