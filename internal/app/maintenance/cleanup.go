package maintenance

import (
	"context"
	"errors"

	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rahmatsubandi/undanganku/internal/models"
	"github.com/rahmatsubandi/undanganku/pkg/logger"
)

const defaultSweepSpec = "@hourly"

// Cleaner periodically removes guest records whose parent invitation no
// longer exists. Invitation deletion removes children best-effort in the
// same request; this sweep catches the rows a partially failed delete
// leaves behind.
type Cleaner struct {
	db   *gorm.DB
	cron *cron.Cron
	log  *zap.Logger

	sweepSchedule string
}

// Option customises the Cleaner.
type Option func(*Cleaner)

// WithCron injects a preconfigured cron instance, primarily for testing.
func WithCron(c *cron.Cron) Option {
	return func(cleaner *Cleaner) {
		if c != nil {
			cleaner.cron = c
		}
	}
}

// WithSweepSchedule overrides the cron specification for the orphan sweep.
func WithSweepSchedule(spec string) Option {
	return func(cleaner *Cleaner) {
		if spec != "" {
			cleaner.sweepSchedule = spec
		}
	}
}

// NewCleaner constructs a Cleaner with sensible defaults.
func NewCleaner(db *gorm.DB, opts ...Option) *Cleaner {
	cleaner := &Cleaner{
		db:            db,
		sweepSchedule: defaultSweepSpec,
		log:           logger.WithModule("maintenance"),
	}

	for _, opt := range opts {
		opt(cleaner)
	}

	if cleaner.cron == nil {
		cleaner.cron = cron.New(cron.WithLogger(cron.DiscardLogger))
	}

	return cleaner
}

// Start registers the sweep with the cron scheduler and launches it.
func (c *Cleaner) Start() error {
	if c.db == nil {
		return nil
	}

	if _, err := c.cron.AddFunc(c.sweepSchedule, func() {
		if _, err := SweepOrphans(context.Background(), c.db); err != nil {
			c.log.Warn("orphan sweep failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}

	c.cron.Start()
	return nil
}

// Stop halts the underlying scheduler, waiting for any running jobs to complete.
func (c *Cleaner) Stop() context.Context {
	if c.cron == nil {
		return context.Background()
	}
	return c.cron.Stop()
}

// RunOnce executes the sweep immediately. Primarily used in tests and during
// graceful shutdown.
func (c *Cleaner) RunOnce(ctx context.Context) error {
	if c.db == nil {
		return nil
	}
	_, err := SweepOrphans(ctx, c.db)
	return err
}

// OrphanSweepStats captures the number of records removed per table.
type OrphanSweepStats struct {
	RSVPs    int64
	Messages int64
}

// SweepOrphans deletes RSVPs and messages whose invitation is gone.
func SweepOrphans(ctx context.Context, db *gorm.DB) (OrphanSweepStats, error) {
	if db == nil {
		return OrphanSweepStats{}, errors.New("orphan sweep: db is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	stats := OrphanSweepStats{}
	var errs error

	missingParent := db.Model(&models.Invitation{}).Select("id")

	if result := db.WithContext(ctx).
		Where("invitation_id NOT IN (?)", missingParent).
		Delete(&models.RSVP{}); result.Error != nil {
		errs = multierr.Append(errs, result.Error)
	} else {
		stats.RSVPs = result.RowsAffected
	}

	if result := db.WithContext(ctx).
		Where("invitation_id NOT IN (?)", missingParent).
		Delete(&models.Message{}); result.Error != nil {
		errs = multierr.Append(errs, result.Error)
	} else {
		stats.Messages = result.RowsAffected
	}

	if stats.RSVPs > 0 || stats.Messages > 0 {
		logger.WithModule("maintenance").Info("orphan sweep removed records",
			zap.Int64("rsvps", stats.RSVPs),
			zap.Int64("messages", stats.Messages),
		)
	}

	return stats, errs
}
