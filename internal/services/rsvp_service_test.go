package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rahmatsubandi/undanganku/internal/database/testutil"
	"github.com/rahmatsubandi/undanganku/internal/models"
)

func TestRSVPServiceCreatePublic(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	invSvc, err := NewInvitationService(db)
	require.NoError(t, err)
	svc, err := NewRSVPService(db)
	require.NoError(t, err)

	owner := mustCreateOwner(t, db, "rsvp-owner@example.com")
	ctx := context.Background()

	inv, err := invSvc.Create(ctx, owner.ID, testDocumentInput())
	require.NoError(t, err)

	rsvp, err := svc.CreatePublic(ctx, inv.ID, CreateRSVPInput{
		GuestName:  "Tamu Undangan",
		Attendance: models.AttendanceYes,
	})
	require.NoError(t, err)
	require.NotEmpty(t, rsvp.ID)
	require.Equal(t, inv.ID, rsvp.InvitationID)
	require.Equal(t, 1, rsvp.GuestCount, "guest count defaults to 1")

	_, err = svc.CreatePublic(ctx, "missing-invitation", CreateRSVPInput{
		GuestName:  "Tamu",
		Attendance: models.AttendanceYes,
	})
	require.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestRSVPServiceListForOwner(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	invSvc, err := NewInvitationService(db)
	require.NoError(t, err)
	svc, err := NewRSVPService(db)
	require.NoError(t, err)

	owner := mustCreateOwner(t, db, "rsvp-list-owner@example.com")
	intruder := mustCreateOwner(t, db, "rsvp-list-intruder@example.com")
	ctx := context.Background()

	inv, err := invSvc.Create(ctx, owner.ID, testDocumentInput())
	require.NoError(t, err)

	_, err = svc.CreatePublic(ctx, inv.ID, CreateRSVPInput{GuestName: "A", Attendance: models.AttendanceYes})
	require.NoError(t, err)

	list, err := svc.ListForOwner(ctx, inv.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = svc.ListForOwner(ctx, inv.ID, intruder.ID)
	require.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestRSVPServiceDelete(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	invSvc, err := NewInvitationService(db)
	require.NoError(t, err)
	svc, err := NewRSVPService(db)
	require.NoError(t, err)

	owner := mustCreateOwner(t, db, "rsvp-del-owner@example.com")
	intruder := mustCreateOwner(t, db, "rsvp-del-intruder@example.com")
	ctx := context.Background()

	inv, err := invSvc.Create(ctx, owner.ID, testDocumentInput())
	require.NoError(t, err)

	rsvp, err := svc.CreatePublic(ctx, inv.ID, CreateRSVPInput{GuestName: "A", Attendance: models.AttendanceNo})
	require.NoError(t, err)

	// Wrong owner is rejected before any deletion happens.
	require.ErrorIs(t, svc.Delete(ctx, rsvp.ID, intruder.ID), ErrNotInvitationOwner)

	require.NoError(t, svc.Delete(ctx, rsvp.ID, owner.ID))
	require.ErrorIs(t, svc.Delete(ctx, rsvp.ID, owner.ID), ErrRSVPNotFound)
}
