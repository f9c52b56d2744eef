// Package scheduler provides scheduled pipeline execution for
// PitchSignals daemon mode.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pitchsignals/pitchsignals/internal/pipeline"
	"github.com/rs/zerolog/log"
)

// Job represents a scheduled job.
type Job struct {
	Name     string
	Schedule Schedule
	Handler  func(ctx context.Context) error
	LastRun  time.Time
	NextRun  time.Time
}

// Schedule defines when a job should run.
type Schedule struct {
	// For fixed-interval jobs
	Interval time.Duration

	// For time-of-day jobs (in UTC)
	Hour   int
	Minute int

	// Type of schedule
	Type ScheduleType
}

// ScheduleType defines the type of schedule.
type ScheduleType string

const (
	ScheduleInterval ScheduleType = "interval"
	ScheduleDaily    ScheduleType = "daily"
)

// Default job names, addressable through RunJobNow.
const (
	JobDailyDigest = "daily-digest"
	JobSettleSweep = "settle-sweep"
	JobLiveSweep   = "live-sweep"
)

// Config holds the default job timings.
type Config struct {
	DigestHourUTC  int
	SettleInterval time.Duration
	LiveInterval   time.Duration
}

// Scheduler manages the daily digest run and the interval settlement
// sweep.
type Scheduler struct {
	runner *pipeline.Runner

	jobs    []*Job
	jobsMux sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a new scheduler.
func NewScheduler(runner *pipeline.Runner, cfg Config) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		runner: runner,
		jobs:   make([]*Job, 0),
		ctx:    ctx,
		cancel: cancel,
	}

	s.registerDefaultJobs(cfg)

	return s
}

// registerDefaultJobs sets up the default run schedule.
func (s *Scheduler) registerDefaultJobs(cfg Config) {
	// Full pipeline run once per day for the digest.
	s.AddJob(&Job{
		Name: JobDailyDigest,
		Schedule: Schedule{
			Type:   ScheduleDaily,
			Hour:   cfg.DigestHourUTC,
			Minute: 0,
		},
		Handler: func(ctx context.Context) error {
			_, err := s.runner.Run(ctx)
			return err
		},
	})

	// Settlement sweep between digests so finished fixtures get
	// verified the same day. The run skips content generation when no
	// upcoming matches remain.
	if cfg.SettleInterval > 0 {
		s.AddJob(&Job{
			Name: JobSettleSweep,
			Schedule: Schedule{
				Type:     ScheduleInterval,
				Interval: cfg.SettleInterval,
			},
			Handler: func(ctx context.Context) error {
				_, err := s.runner.Run(ctx)
				return err
			},
		})
	}

	// In-play score bulletins. Disabled unless an interval is set;
	// every sweep spends its own request budget.
	if cfg.LiveInterval > 0 {
		s.AddJob(&Job{
			Name: JobLiveSweep,
			Schedule: Schedule{
				Type:     ScheduleInterval,
				Interval: cfg.LiveInterval,
			},
			Handler: s.runner.RunLive,
		})
	}
}

// AddJob adds a job to the scheduler.
func (s *Scheduler) AddJob(job *Job) {
	s.jobsMux.Lock()
	defer s.jobsMux.Unlock()

	job.NextRun = s.calculateNextRun(job.Schedule)
	s.jobs = append(s.jobs, job)

	log.Info().
		Str("job", job.Name).
		Time("next_run", job.NextRun).
		Msg("Job registered")
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	log.Info().Int("jobs", len(s.jobs)).Msg("Starting scheduler")

	s.wg.Add(1)
	go s.jobLoop()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	log.Info().Msg("Stopping scheduler")
	s.cancel()
	s.wg.Wait()
}

// jobLoop checks and runs scheduled jobs.
func (s *Scheduler) jobLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.checkAndRunJobs()
		}
	}
}

// checkAndRunJobs runs any jobs that are due.
func (s *Scheduler) checkAndRunJobs() {
	now := time.Now().UTC()

	s.jobsMux.Lock()
	defer s.jobsMux.Unlock()

	for _, job := range s.jobs {
		if now.After(job.NextRun) || now.Equal(job.NextRun) {
			go s.runJob(job)
			job.LastRun = now
			job.NextRun = s.calculateNextRun(job.Schedule)

			log.Debug().
				Str("job", job.Name).
				Time("next_run", job.NextRun).
				Msg("Job scheduled for next run")
		}
	}
}

// runJob executes a job.
func (s *Scheduler) runJob(job *Job) {
	log.Info().Str("job", job.Name).Msg("Running job")

	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	if err := job.Handler(ctx); err != nil {
		log.Error().Err(err).Str("job", job.Name).Msg("Job failed")
	} else {
		log.Info().Str("job", job.Name).Msg("Job completed")
	}
}

// calculateNextRun calculates the next run time for a schedule.
func (s *Scheduler) calculateNextRun(schedule Schedule) time.Time {
	now := time.Now().UTC()

	switch schedule.Type {
	case ScheduleInterval:
		return now.Add(schedule.Interval)

	case ScheduleDaily:
		next := time.Date(now.Year(), now.Month(), now.Day(),
			schedule.Hour, schedule.Minute, 0, 0, time.UTC)
		if next.Before(now) || next.Equal(now) {
			next = next.Add(24 * time.Hour)
		}
		return next

	default:
		return now.Add(time.Hour)
	}
}

// RunJobNow runs a specific job immediately by name.
func (s *Scheduler) RunJobNow(name string) error {
	s.jobsMux.RLock()
	defer s.jobsMux.RUnlock()

	for _, job := range s.jobs {
		if job.Name == name {
			go s.runJob(job)
			return nil
		}
	}

	return fmt.Errorf("unknown job: %s", name)
}

// GetJobStatus returns the status of all jobs.
func (s *Scheduler) GetJobStatus() []map[string]interface{} {
	s.jobsMux.RLock()
	defer s.jobsMux.RUnlock()

	status := make([]map[string]interface{}, len(s.jobs))
	for i, job := range s.jobs {
		status[i] = map[string]interface{}{
			"name":     job.Name,
			"last_run": job.LastRun,
			"next_run": job.NextRun,
		}
	}
	return status
}
