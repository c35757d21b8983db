package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthy(t *testing.T) {
	up, down := true, false

	assert.True(t, HealthStatus{}.Healthy())
	assert.True(t, HealthStatus{Mongo: &up, Redis: []bool{true, true}}.Healthy())
	assert.False(t, HealthStatus{Mongo: &down}.Healthy())
	assert.False(t, HealthStatus{Mongo: &up, Redis: []bool{true, false}}.Healthy())
}

func TestCheckHealthWithoutBackends(t *testing.T) {
	status := CheckHealth(context.Background(), nil, nil)

	assert.Nil(t, status.Mongo)
	assert.Empty(t, status.Redis)
	assert.True(t, GetHealthStatus().Healthy())
	assert.Equal(t, status.CheckedAt, GetHealthStatus().CheckedAt)
}
