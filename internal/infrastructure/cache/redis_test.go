package cache

import (
	"context"
	"testing"

	"go-medical-appointment/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_Disabled(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{Enabled: false})
	assert.NoError(t, err)
	assert.Nil(t, client)
}
