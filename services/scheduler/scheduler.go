// Package scheduler runs the recurring background jobs: reminders, reports,
// cleanup and health probes.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eventparadise/config"
	"eventparadise/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one schedulable unit of work.
type Job struct {
	Name string
	Spec string
	Run  func()
}

// JobInfo is the status view of a registered job.
type JobInfo struct {
	Name string    `json:"name"`
	Spec string    `json:"spec"`
	Prev time.Time `json:"prevRun"`
	Next time.Time `json:"nextRun"`
}

// Scheduler wraps a cron runner. Jobs never overlap themselves: a tick that
// fires while the previous run of the same job is still going is skipped.
// Panics inside a job are recovered at the job boundary.
type Scheduler struct {
	cron *cron.Cron

	mu      sync.Mutex
	entries map[string]cron.EntryID
	specs   map[string]string
	lastRun map[string]time.Time
}

// New builds a scheduler in the configured timezone and registers the given
// jobs. It does not start ticking until Start is called.
func New(jobs []Job) (*Scheduler, error) {
	tz := config.AppConfig.SchedulerTimezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler timezone %q: %w", tz, err)
	}

	logger := cronLogger{log: utils.GetLogger()}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(logger), cron.Recover(logger)),
		),
		entries: make(map[string]cron.EntryID),
		specs:   make(map[string]string),
		lastRun: make(map[string]time.Time),
	}

	for _, job := range jobs {
		if err := s.register(job); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scheduler) register(job Job) error {
	name, run := job.Name, job.Run
	id, err := s.cron.AddFunc(job.Spec, func() {
		started := time.Now()
		utils.GetLogger().Info("Job started", zap.String("job", name))

		run()

		s.mu.Lock()
		s.lastRun[name] = started
		s.mu.Unlock()
		utils.GetLogger().Info("Job finished",
			zap.String("job", name), zap.Duration("took", time.Since(started)))
	})
	if err != nil {
		return fmt.Errorf("failed to register job %q: %w", name, err)
	}

	s.mu.Lock()
	s.entries[name] = id
	s.specs[name] = job.Spec
	s.mu.Unlock()
	return nil
}

// Start begins running registered jobs on their schedules.
func (s *Scheduler) Start() {
	s.cron.Start()
	utils.GetLogger().Info("Scheduler started", zap.Int("jobs", len(s.entries)))
}

// Stop halts the scheduler and returns a context that is done once all
// in-flight jobs have completed.
func (s *Scheduler) Stop() context.Context {
	utils.GetLogger().Info("Scheduler stopping")
	return s.cron.Stop()
}

// Status returns the registered jobs with their previous and next run times.
func (s *Scheduler) Status() []JobInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]JobInfo, 0, len(s.entries))
	for name, id := range s.entries {
		entry := s.cron.Entry(id)
		infos = append(infos, JobInfo{
			Name: name,
			Spec: s.specs[name],
			Prev: s.lastRun[name],
			Next: entry.Next,
		})
	}
	return infos
}

// cronLogger adapts zap to the cron.Logger interface.
type cronLogger struct {
	log *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Infow(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Errorw(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
