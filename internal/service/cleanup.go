package service

import (
	"time"

	"stralshund/dog-api/internal/model"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StartCleanup schedules the periodic DB sweeps and returns the
// running scheduler so the caller can stop it
func StartCleanup(db *gorm.DB, verificationGrace time.Duration) *cron.Cron {
	c := cron.New()

	c.AddFunc("@every 15m", func() { sweepExpiredResetTokens(db) })
	c.AddFunc("@every 10m", func() { sweepPastMeetups(db) })
	c.AddFunc("@every 1h", func() { sweepUnverifiedAccounts(db, verificationGrace) })

	c.Start()

	zap.L().Debug("Cleanup jobs attached")

	return c
}

// Stale reset token digests are useless once expired, the
// validation path checks the expiry anyway
func sweepExpiredResetTokens(db *gorm.DB) {
	err := db.Model(&model.User{}).
		Where("reset_token_expiry < ?", time.Now()).
		Updates(map[string]any{
			"reset_token_hash":   nil,
			"reset_token_expiry": nil,
		}).
		Error
	if err != nil {
		zap.L().Error("Failed to clean up expired reset tokens", zap.Error(err))
	}
}

// Meetups whose time window has passed get marked completed
func sweepPastMeetups(db *gorm.DB) {
	err := db.Model(&model.Meetup{}).
		Where("status IN ? AND date_time < ?", []string{model.MeetupOpen, model.MeetupFull}, time.Now().Add(-2*time.Hour)).
		Update("status", model.MeetupCompleted).
		Error
	if err != nil {
		zap.L().Error("Failed to complete past meetups", zap.Error(err))
	}
}

// Accounts that never verified their email get deleted once the
// grace window runs out. Accounts without a pending verification
// token are spared, they never had a mail to act on
func sweepUnverifiedAccounts(db *gorm.DB, grace time.Duration) {
	cutoff := time.Now().Add(-grace)

	res := db.
		Where("email_verified = ? AND verification_token_hash IS NOT NULL AND created_at < ?", false, cutoff).
		Delete(&model.User{})
	if res.Error != nil {
		zap.L().Error("Failed to delete unverified accounts", zap.Error(res.Error))
		return
	}

	if res.RowsAffected > 0 {
		zap.L().Debug("Deleted unverified accounts", zap.Int64("count", res.RowsAffected))
	}
}
