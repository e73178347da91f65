package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventparadise/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A freshly booted process has no stored snapshot yet; /health must probe
// on demand instead of reporting the zero value.
func TestHealthProbesWhenNoSnapshotStored(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSystemHandler(nil)
	r := gin.New()
	r.GET("/health", h.Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var status utils.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.CheckedAt.IsZero(), "a probe must have run")

	// No Mongo or Redis behind the test process, so the probe reports
	// unavailable rather than an unchecked zero snapshot.
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, utils.GetHealthStatus().CheckedAt.IsZero())
}
