package service

import (
	"time"

	"stralshund/dog-api/internal/model"

	"gorm.io/gorm"
)

// JoinMeetup adds a confirmed participant. When the join brings the
// meetup to capacity its status flips to full inside the same
// transaction, done here at the service level rather than through a
// storage hook
func JoinMeetup(db *gorm.DB, meetupID uint, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var meetup model.Meetup

		err := tx.Where("id = ?", meetupID).First(&meetup).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrMeetupNotFound
			}

			return err
		}

		if meetup.Status != model.MeetupOpen {
			if meetup.Status == model.MeetupFull {
				return ErrMeetupFull
			}

			return ErrMeetupClosed
		}

		var joined int64

		err = tx.Model(model.MeetupParticipant{}).
			Where("meetup_id = ? AND user_id = ? AND status = ?", meetupID, userID, "confirmed").
			Count(&joined).
			Error
		if err != nil {
			return err
		}

		if joined > 0 {
			return ErrAlreadyJoined
		}

		var confirmed int64

		err = tx.Model(model.MeetupParticipant{}).
			Where("meetup_id = ? AND status = ?", meetupID, "confirmed").
			Count(&confirmed).
			Error
		if err != nil {
			return err
		}

		if meetup.MaxParticipants > 0 && confirmed >= int64(meetup.MaxParticipants) {
			return ErrMeetupFull
		}

		err = tx.Create(&model.MeetupParticipant{
			MeetupID: meetupID,
			UserID:   userID,
			Status:   "confirmed",
			JoinedAt: time.Now(),
		}).Error
		if err != nil {
			return err
		}

		if meetup.MaxParticipants > 0 && confirmed+1 >= int64(meetup.MaxParticipants) {
			return tx.Model(&model.Meetup{}).
				Where("id = ?", meetupID).
				Update("status", model.MeetupFull).
				Error
		}

		return nil
	})
}
