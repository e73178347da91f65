package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthyRequiresBothServices(t *testing.T) {
	assert.True(t, HealthStatus{Mongo: true, Redis: true}.Healthy())
	assert.False(t, HealthStatus{Mongo: true}.Healthy())
	assert.False(t, HealthStatus{Redis: true}.Healthy())
	assert.False(t, HealthStatus{}.Healthy(), "the zero snapshot is unhealthy")
}

func TestGetHealthStatusReturnsStoredSnapshot(t *testing.T) {
	stored := HealthStatus{Mongo: true, Redis: true, CheckedAt: time.Now()}
	healthMu.Lock()
	currentHealth = stored
	healthMu.Unlock()
	defer func() {
		healthMu.Lock()
		currentHealth = HealthStatus{}
		healthMu.Unlock()
	}()

	assert.Equal(t, stored, GetHealthStatus())
}
