package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rahmatsubandi/undanganku/internal/models"
)

var (
	// ErrRSVPNotFound indicates the requested RSVP does not exist.
	ErrRSVPNotFound = errors.New("rsvp service: rsvp not found")
	// ErrNotInvitationOwner indicates the caller does not own the parent invitation.
	ErrNotInvitationOwner = errors.New("rsvp service: caller does not own the invitation")
)

const guestListLimit = 1000

// RSVPService manages guest attendance records.
type RSVPService struct {
	db *gorm.DB
}

// NewRSVPService constructs an RSVP service once a database handle is supplied.
func NewRSVPService(db *gorm.DB) (*RSVPService, error) {
	if db == nil {
		return nil, errors.New("rsvp service: db is required")
	}
	return &RSVPService{db: db}, nil
}

// CreateRSVPInput captures a guest submission.
type CreateRSVPInput struct {
	GuestName  string
	Phone      string
	Attendance models.Attendance
	GuestCount int
}

// CreatePublic records an unauthenticated guest RSVP. The invitation must
// exist at submission time; the relation is not enforced beyond this lookup.
func (s *RSVPService) CreatePublic(ctx context.Context, invitationID string, input CreateRSVPInput) (*models.RSVP, error) {
	ctx = ensuredContext(ctx)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Invitation{}).Where("id = ?", invitationID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrInvitationNotFound
	}

	guestCount := input.GuestCount
	if guestCount <= 0 {
		guestCount = 1
	}

	rsvp := &models.RSVP{
		InvitationID: invitationID,
		GuestName:    input.GuestName,
		Phone:        input.Phone,
		Attendance:   input.Attendance,
		GuestCount:   guestCount,
	}

	if err := s.db.WithContext(ctx).Create(rsvp).Error; err != nil {
		return nil, err
	}
	return rsvp, nil
}

// ListForOwner returns the RSVPs of an invitation owned by ownerID.
func (s *RSVPService) ListForOwner(ctx context.Context, invitationID, ownerID string) ([]models.RSVP, error) {
	ctx = ensuredContext(ctx)

	if err := s.requireOwnership(ctx, invitationID, ownerID, ErrInvitationNotFound); err != nil {
		return nil, err
	}

	var rsvps []models.RSVP
	err := s.db.WithContext(ctx).
		Where("invitation_id = ?", invitationID).
		Order("created_at DESC").
		Limit(guestListLimit).
		Find(&rsvps).Error
	if err != nil {
		return nil, err
	}
	return rsvps, nil
}

// Delete removes a single RSVP after checking the caller owns its invitation.
func (s *RSVPService) Delete(ctx context.Context, rsvpID, ownerID string) error {
	ctx = ensuredContext(ctx)

	var rsvp models.RSVP
	err := s.db.WithContext(ctx).Take(&rsvp, "id = ?", rsvpID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRSVPNotFound
		}
		return err
	}

	if err := s.requireOwnership(ctx, rsvp.InvitationID, ownerID, ErrNotInvitationOwner); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&models.RSVP{}, "id = ?", rsvpID).Error
}

func (s *RSVPService) requireOwnership(ctx context.Context, invitationID, ownerID string, notOwner error) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Invitation{}).
		Where("id = ? AND user_id = ?", invitationID, ownerID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return notOwner
	}
	return nil
}
