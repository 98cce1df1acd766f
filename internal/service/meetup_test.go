package service

import (
	"testing"
	"time"

	"stralshund/dog-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func makeMeetup(t *testing.T, db *gorm.DB, maxParticipants int, status string) *model.Meetup {
	t.Helper()

	meetup := model.Meetup{
		CreatorID:       "creator",
		Title:           "Evening walk",
		DateTime:        time.Now().Add(24 * time.Hour),
		MaxParticipants: maxParticipants,
		Status:          status,
	}
	require.NoError(t, db.Create(&meetup).Error)

	return &meetup
}

func TestJoinMeetup(t *testing.T) {
	db := testDB(t)
	meetup := makeMeetup(t, db, 0, model.MeetupOpen)

	require.NoError(t, JoinMeetup(db, meetup.ID, "user-1"))

	var count int64
	require.NoError(t, db.Model(model.MeetupParticipant{}).
		Where("meetup_id = ?", meetup.ID).
		Count(&count).
		Error)
	assert.EqualValues(t, 1, count)
}

func TestJoinMeetupTwice(t *testing.T) {
	db := testDB(t)
	meetup := makeMeetup(t, db, 0, model.MeetupOpen)

	require.NoError(t, JoinMeetup(db, meetup.ID, "user-1"))
	assert.ErrorIs(t, JoinMeetup(db, meetup.ID, "user-1"), ErrAlreadyJoined)
}

func TestJoinMeetupCapacity(t *testing.T) {
	db := testDB(t)
	meetup := makeMeetup(t, db, 2, model.MeetupOpen)

	require.NoError(t, JoinMeetup(db, meetup.ID, "user-1"))
	require.NoError(t, JoinMeetup(db, meetup.ID, "user-2"))

	// The join that fills the last slot flips the status
	var reloaded model.Meetup
	require.NoError(t, db.First(&reloaded, meetup.ID).Error)
	assert.Equal(t, model.MeetupFull, reloaded.Status)

	assert.ErrorIs(t, JoinMeetup(db, meetup.ID, "user-3"), ErrMeetupFull)
}

func TestJoinMeetupClosed(t *testing.T) {
	db := testDB(t)
	meetup := makeMeetup(t, db, 0, model.MeetupCancelled)

	assert.ErrorIs(t, JoinMeetup(db, meetup.ID, "user-1"), ErrMeetupClosed)
}

func TestJoinMeetupMissing(t *testing.T) {
	db := testDB(t)

	assert.ErrorIs(t, JoinMeetup(db, 9999, "user-1"), ErrMeetupNotFound)
}
