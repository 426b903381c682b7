package maintenance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rahmatsubandi/undanganku/internal/database/testutil"
	"github.com/rahmatsubandi/undanganku/internal/models"
)

func TestSweepOrphans(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	user := models.User{Email: "sweep@example.com", Password: "x", Name: "Sweep"}
	require.NoError(t, db.Create(&user).Error)

	inv := models.Invitation{
		UserID: user.ID,
		Groom:  []byte(`{}`),
		Bride:  []byte(`{}`),
		Events: []byte(`[]`),
	}
	require.NoError(t, db.Create(&inv).Error)

	// One healthy RSVP plus a pair of orphans left behind by a failed delete.
	require.NoError(t, db.Create(&models.RSVP{
		InvitationID: inv.ID, GuestName: "Kept", Attendance: models.AttendanceYes, GuestCount: 1,
	}).Error)
	require.NoError(t, db.Create(&models.RSVP{
		InvitationID: "gone-invitation", GuestName: "Orphan", Attendance: models.AttendanceYes, GuestCount: 1,
	}).Error)
	require.NoError(t, db.Create(&models.Message{
		InvitationID: "gone-invitation", GuestName: "Orphan", Message: "hello",
	}).Error)

	stats, err := SweepOrphans(context.Background(), db)
	require.NoError(t, err)
	require.Equal(t, int64(1), stats.RSVPs)
	require.Equal(t, int64(1), stats.Messages)

	var rsvps []models.RSVP
	require.NoError(t, db.Find(&rsvps).Error)
	require.Len(t, rsvps, 1)
	require.Equal(t, "Kept", rsvps[0].GuestName)

	var messages []models.Message
	require.NoError(t, db.Find(&messages).Error)
	require.Empty(t, messages)

	// A second pass is a no-op.
	stats, err = SweepOrphans(context.Background(), db)
	require.NoError(t, err)
	require.Zero(t, stats.RSVPs)
	require.Zero(t, stats.Messages)
}

func TestCleanerRunOnce(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	require.NoError(t, db.Create(&models.Message{
		InvitationID: "gone", GuestName: "Orphan", Message: "hi",
	}).Error)

	cleaner := NewCleaner(db)
	require.NoError(t, cleaner.RunOnce(context.Background()))

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCleanerStartStop(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	cleaner := NewCleaner(db, WithSweepSchedule("@every 1h"))
	require.NoError(t, cleaner.Start())
	<-cleaner.Stop().Done()
}
