package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrGuardHeld is returned when another request is appointing the same
// (doctor, patient, exercise) triple right now.
var ErrGuardHeld = errors.New("appointment guard is held by another request")

const RedisAppointmentGuardPrefix = "appointment:guard:"

// releaseGuardScript deletes the guard only if it still carries our token,
// so an expired guard re-acquired by someone else is left alone.
var releaseGuardScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// AppointmentGuard serializes appoint requests for the same triple across
// server instances. The release func is always safe to call.
type AppointmentGuard interface {
	Acquire(ctx context.Context, doctorID, patientID, exerciseID uint) (release func(), err error)
}

// NewAppointmentGuard returns a Redis-backed guard, or a no-op guard when
// redisClient is nil.
func NewAppointmentGuard(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) AppointmentGuard {
	if redisClient == nil {
		return noopAppointmentGuard{}
	}
	return &redisAppointmentGuard{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
		newToken:    uuid.NewString,
	}
}

type noopAppointmentGuard struct{}

func (noopAppointmentGuard) Acquire(context.Context, uint, uint, uint) (func(), error) {
	return func() {}, nil
}

type redisAppointmentGuard struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
	newToken    func() string
}

func (g *redisAppointmentGuard) Acquire(ctx context.Context, doctorID, patientID, exerciseID uint) (func(), error) {
	key := GuardKey(doctorID, patientID, exerciseID)
	token := g.newToken()

	acquired, err := g.redisClient.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		g.log.Warnf("Failed to acquire appointment guard %s: %+v", key, err)
		return func() {}, fmt.Errorf("acquire appointment guard %s: %w", key, err)
	}
	if !acquired {
		return func() {}, ErrGuardHeld
	}

	release := func() {
		// The request context may already be done; release on a fresh one.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := releaseGuardScript.Run(releaseCtx, g.redisClient, []string{key}, token).Err(); err != nil {
			g.log.Warnf("Failed to release appointment guard %s (expires in %v): %+v", key, g.ttl, err)
		}
	}

	return release, nil
}

// GuardKey builds the Redis key for an appointment triple.
func GuardKey(doctorID, patientID, exerciseID uint) string {
	return fmt.Sprintf("%s%d:%d:%d", RedisAppointmentGuardPrefix, doctorID, patientID, exerciseID)
}
