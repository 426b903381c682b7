package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rahmatsubandi/undanganku/internal/models"
)

var (
	// ErrMessageNotFound indicates the requested message does not exist.
	ErrMessageNotFound = errors.New("message service: message not found")
)

// MessageService manages guest greetings and owner replies.
type MessageService struct {
	db *gorm.DB
}

// NewMessageService constructs a message service once a database handle is supplied.
func NewMessageService(db *gorm.DB) (*MessageService, error) {
	if db == nil {
		return nil, errors.New("message service: db is required")
	}
	return &MessageService{db: db}, nil
}

// CreatePublic records an unauthenticated guest message on an existing invitation.
func (s *MessageService) CreatePublic(ctx context.Context, invitationID, guestName, text string) (*models.Message, error) {
	ctx = ensuredContext(ctx)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Invitation{}).Where("id = ?", invitationID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrInvitationNotFound
	}

	msg := &models.Message{
		InvitationID: invitationID,
		GuestName:    guestName,
		Message:      text,
	}

	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// ListPublic returns an invitation's messages newest first, for the public page.
func (s *MessageService) ListPublic(ctx context.Context, invitationID string) ([]models.Message, error) {
	ctx = ensuredContext(ctx)

	var msgs []models.Message
	err := s.db.WithContext(ctx).
		Where("invitation_id = ?", invitationID).
		Order("created_at DESC").
		Limit(guestListLimit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// ListForOwner returns the messages of an invitation owned by ownerID.
func (s *MessageService) ListForOwner(ctx context.Context, invitationID, ownerID string) ([]models.Message, error) {
	ctx = ensuredContext(ctx)

	if err := s.requireOwnership(ctx, invitationID, ownerID, ErrInvitationNotFound); err != nil {
		return nil, err
	}

	return s.ListPublic(ctx, invitationID)
}

// Reply sets the owner's reply on a message, overwriting any previous reply.
func (s *MessageService) Reply(ctx context.Context, messageID, ownerID, reply string) (*models.Message, error) {
	ctx = ensuredContext(ctx)

	msg, err := s.getOwned(ctx, messageID, ownerID)
	if err != nil {
		return nil, err
	}

	msg.Reply = reply
	if err := s.db.WithContext(ctx).Model(msg).Update("reply", reply).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// Delete removes a message after checking the caller owns its invitation.
func (s *MessageService) Delete(ctx context.Context, messageID, ownerID string) error {
	ctx = ensuredContext(ctx)

	msg, err := s.getOwned(ctx, messageID, ownerID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&models.Message{}, "id = ?", msg.ID).Error
}

func (s *MessageService) getOwned(ctx context.Context, messageID, ownerID string) (*models.Message, error) {
	var msg models.Message
	err := s.db.WithContext(ctx).Take(&msg, "id = ?", messageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}

	if err := s.requireOwnership(ctx, msg.InvitationID, ownerID, ErrNotInvitationOwner); err != nil {
		return nil, err
	}

	return &msg, nil
}

func (s *MessageService) requireOwnership(ctx context.Context, invitationID, ownerID string, notOwner error) error {
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
