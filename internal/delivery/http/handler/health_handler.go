package handler

import (
	"context"
	"net/http"
	"time"

	"go-medical-appointment/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
}

// NewHealthHandler builds the health probe. redisClient may be nil.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
		log:         log,
	}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.log.Warnf("Health check database ping failed: %+v", err)
		response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": err.Error()})
		return
	}

	if h.redisClient != nil {
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			h.log.Warnf("Health check redis ping failed: %+v", err)
			response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "redis": err.Error()})
			return
		}
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
