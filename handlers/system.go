package handlers

import (
	"context"
	"net/http"
	"time"

	"eventparadise/database"
	"eventparadise/services/scheduler"
	"eventparadise/utils"

	"github.com/gin-gonic/gin"
)

const healthProbeTimeout = 5 * time.Second

// SystemHandler serves the health and scheduler status endpoints.
type SystemHandler struct {
	Scheduler *scheduler.Scheduler
}

func NewSystemHandler(sched *scheduler.Scheduler) *SystemHandler {
	return &SystemHandler{Scheduler: sched}
}

// Health reports the latest stored health snapshot. When no probe has run
// yet (a freshly booted process whose hourly health job has not fired), it
// probes on demand instead of serving the zero-value snapshot.
func (h *SystemHandler) Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	if status.CheckedAt.IsZero() {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
		defer cancel()
		status = utils.CheckHealth(ctx, utils.CacheClient, database.MongoClient)
	}

	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

// SchedulerStatus lists the background jobs with their schedules and run
// times. Admin only.
func (h *SystemHandler) SchedulerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jobs": h.Scheduler.Status()})
}
