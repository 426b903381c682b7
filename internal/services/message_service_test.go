package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rahmatsubandi/undanganku/internal/database/testutil"
)

func TestMessageServiceCreateAndListPublic(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	invSvc, err := NewInvitationService(db)
	require.NoError(t, err)
	svc, err := NewMessageService(db)
	require.NoError(t, err)

	owner := mustCreateOwner(t, db, "msg-owner@example.com")
	ctx := context.Background()

	inv, err := invSvc.Create(ctx, owner.ID, testDocumentInput())
	require.NoError(t, err)

	first, err := svc.CreatePublic(ctx, inv.ID, "Tamu A", "Selamat!")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	_, err = svc.CreatePublic(ctx, inv.ID, "Tamu B", "Bahagia selalu")
	require.NoError(t, err)

	_, err = svc.CreatePublic(ctx, "missing-invitation", "X", "Y")
	require.ErrorIs(t, err, ErrInvitationNotFound)

	// Public listing is newest first.
	list, err := svc.ListPublic(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Tamu B", list[0].GuestName)
	require.Equal(t, "Tamu A", list[1].GuestName)
}

func TestMessageServiceReply(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	invSvc, err := NewInvitationService(db)
	require.NoError(t, err)
	svc, err := NewMessageService(db)
	require.NoError(t, err)

	owner := mustCreateOwner(t, db, "msg-reply-owner@example.com")
	intruder := mustCreateOwner(t, db, "msg-reply-intruder@example.com")
	ctx := context.Background()

	inv, err := invSvc.Create(ctx, owner.ID, testDocumentInput())
	require.NoError(t, err)

	msg, err := svc.CreatePublic(ctx, inv.ID, "Tamu", "Selamat ya")
	require.NoError(t, err)

	_, err = svc.Reply(ctx, msg.ID, intruder.ID, "terima kasih")
	require.ErrorIs(t, err, ErrNotInvitationOwner)

	replied, err := svc.Reply(ctx, msg.ID, owner.ID, "terima kasih")
	require.NoError(t, err)
	require.Equal(t, "terima kasih", replied.Reply)

	// A second reply overwrites the first.
	replied, err = svc.Reply(ctx, msg.ID, owner.ID, "sampai jumpa")
	require.NoError(t, err)
	require.Equal(t, "sampai jumpa", replied.Reply)

	_, err = svc.Reply(ctx, "missing-message", owner.ID, "halo")
	require.ErrorIs(t, err, ErrMessageNotFound)
}

func TestMessageServiceDelete(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	invSvc, err := NewInvitationService(db)
	require.NoError(t, err)
	svc, err := NewMessageService(db)
	require.NoError(t, err)

	owner := mustCreateOwner(t, db, "msg-del-owner@example.com")
	intruder := mustCreateOwner(t, db, "msg-del-intruder@example.com")
	ctx := context.Background()

	inv, err := invSvc.Create(ctx, owner.ID, testDocumentInput())
	require.NoError(t, err)

	msg, err := svc.CreatePublic(ctx, inv.ID, "Tamu", "Selamat")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, msg.ID, intruder.ID), ErrNotInvitationOwner)
	require.NoError(t, svc.Delete(ctx, msg.ID, owner.ID))
	require.ErrorIs(t, svc.Delete(ctx, msg.ID, owner.ID), ErrMessageNotFound)
}
