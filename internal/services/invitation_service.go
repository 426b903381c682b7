package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rahmatsubandi/undanganku/internal/invitations"
	"github.com/rahmatsubandi/undanganku/internal/media"
	"github.com/rahmatsubandi/undanganku/internal/models"
	"github.com/rahmatsubandi/undanganku/pkg/logger"
)

var (
	// ErrInvitationNotFound indicates the invitation does not exist or is not
	// visible to the caller. Owner-scoped lookups return this for foreign
	// invitations so their existence is never leaked.
	ErrInvitationNotFound = errors.New("invitation service: invitation not found")
)

const ownerListLimit = 100

// InvitationService manages the invitation document lifecycle.
type InvitationService struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewInvitationService constructs an invitation service once a database handle is supplied.
func NewInvitationService(db *gorm.DB) (*InvitationService, error) {
	if db == nil {
		return nil, errors.New("invitation service: db is required")
	}
	return &InvitationService{db: db, log: logger.WithModule("invitations")}, nil
}

// DocumentInput is the full invitation payload used by create and update;
// updates are whole-document replaces. Nil pointer fields fall back to the
// declared defaults, while a pointer to an empty string stays empty.
type DocumentInput struct {
	Theme      string
	CoverPhoto string

	Groom  invitations.CoupleInfo
	Bride  invitations.CoupleInfo
	Events []invitations.EventInfo

	LoveStory []invitations.LoveStoryItem
	Gallery   []invitations.GalleryItem
	Gifts     []invitations.GiftAccount

	OpeningText *string
	ClosingText *string
	QuranVerse  *string
	QuranSurah  *string

	VideoURL     string
	StreamingURL string

	Settings *invitations.Settings
}

// Create persists a new invitation owned by ownerID. The video URL is
// canonicalized to its embed form and nested items receive generated ids.
func (s *InvitationService) Create(ctx context.Context, ownerID string, input DocumentInput) (*models.Invitation, error) {
	ctx = ensuredContext(ctx)

	inv := &models.Invitation{UserID: ownerID}
	if err := applyDocument(inv, input); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(inv).Error; err != nil {
		return nil, err
	}

	if err := invitations.Normalize(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListByOwner returns the caller's invitations, normalized.
func (s *InvitationService) ListByOwner(ctx context.Context, ownerID string) ([]models.Invitation, error) {
	ctx = ensuredContext(ctx)

	var invs []models.Invitation
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Limit(ownerListLimit).
		Find(&invs).Error
	if err != nil {
		return nil, err
	}

	if err := invitations.NormalizeAll(invs); err != nil {
		return nil, err
	}
	return invs, nil
}

// GetForOwner fetches a single invitation scoped to its owner, normalized.
func (s *InvitationService) GetForOwner(ctx context.Context, id, ownerID string) (*models.Invitation, error) {
	ctx = ensuredContext(ctx)

	var inv models.Invitation
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Take(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	if err := invitations.Normalize(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetPublic fetches an invitation by id without an owner filter, normalized.
// Used by the public invitation link.
func (s *InvitationService) GetPublic(ctx context.Context, id string) (*models.Invitation, error) {
	ctx = ensuredContext(ctx)

	var inv models.Invitation
	err := s.db.WithContext(ctx).Take(&inv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	if err := invitations.Normalize(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Exists reports whether an invitation id is present, for guest submissions.
func (s *InvitationService) Exists(ctx context.Context, id string) (bool, error) {
	ctx = ensuredContext(ctx)

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Invitation{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update replaces the full document of an owner's invitation. Concurrent
// updates race with last-write-wins semantics; there is no version token.
func (s *InvitationService) Update(ctx context.Context, id, ownerID string, input DocumentInput) (*models.Invitation, error) {
	ctx = ensuredContext(ctx)

	inv, err := s.GetForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := applyDocument(inv, input); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(inv).Error; err != nil {
		return nil, err
	}

	if err := invitations.Normalize(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Delete removes an owner's invitation and then bulk-deletes its RSVPs and
// messages. The two child deletes are best-effort and not transactional: a
// failure (or crash) in between leaves orphans for the maintenance sweep,
// and the invitation delete is still reported as successful.
func (s *InvitationService) Delete(ctx context.Context, id, ownerID string) error {
	ctx = ensuredContext(ctx)

	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Invitation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvitationNotFound
	}

	var childErr error
	if err := s.db.WithContext(ctx).Where("invitation_id = ?", id).Delete(&models.RSVP{}).Error; err != nil {
		childErr = multierr.Append(childErr, fmt.Errorf("delete rsvps: %w", err))
	}
	if err := s.db.WithContext(ctx).Where("invitation_id = ?", id).Delete(&models.Message{}).Error; err != nil {
		childErr = multierr.Append(childErr, fmt.Errorf("delete messages: %w", err))
	}
	if childErr != nil {
		s.log.Warn("cascade delete left orphaned guest records",
			zap.String("invitation_id", id),
			zap.Error(childErr),
		)
	}

	return nil
}

// Stats summarises guest responses for one invitation.
type Stats struct {
	TotalRSVP     int64 `json:"total_rsvp"`
	Attending     int64 `json:"attending"`
	NotAttending  int64 `json:"not_attending"`
	Uncertain     int64 `json:"uncertain"`
	TotalGuests   int64 `json:"total_guests"`
	TotalMessages int64 `json:"total_messages"`
}

// GetStats aggregates RSVP and message counts for an owner's invitation.
func (s *InvitationService) GetStats(ctx context.Context, id, ownerID string) (*Stats, error) {
	ctx = ensuredContext(ctx)

	if _, err := s.GetForOwner(ctx, id, ownerID); err != nil {
		return nil, err
	}

	var rsvps []models.RSVP
	if err := s.db.WithContext(ctx).Where("invitation_id = ?", id).Find(&rsvps).Error; err != nil {
		return nil, err
	}

	stats := &Stats{TotalRSVP: int64(len(rsvps))}
	for _, r := range rsvps {
		switch r.Attendance {
		case models.AttendanceYes:
			stats.Attending++
			stats.TotalGuests += int64(r.GuestCount)
		case models.AttendanceNo:
			stats.NotAttending++
		case models.AttendanceUncertain:
			stats.Uncertain++
		}
	}

	if err := s.db.WithContext(ctx).Model(&models.Message{}).
		Where("invitation_id = ?", id).
		Count(&stats.TotalMessages).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// applyDocument writes the input payload onto the model, resolving defaults
// and generating ids for nested items that lack one.
func applyDocument(inv *models.Invitation, input DocumentInput) error {
	inv.Theme = input.Theme
	if inv.Theme == "" {
		inv.Theme = invitations.DefaultTheme
	}
	inv.CoverPhoto = input.CoverPhoto

	inv.OpeningText = stringOrDefault(input.OpeningText, invitations.DefaultOpeningText)
	inv.ClosingText = stringOrDefault(input.ClosingText, invitations.DefaultClosingText)
	inv.QuranVerse = stringOrDefault(input.QuranVerse, invitations.DefaultQuranVerse)
	inv.QuranSurah = stringOrDefault(input.QuranSurah, invitations.DefaultQuranSurah)

	inv.VideoURL = media.EmbedURL(input.VideoURL)
	inv.StreamingURL = input.StreamingURL

	loveStory := input.LoveStory
	for i := range loveStory {
		loveStory[i].ID = invitations.EnsureItemID(loveStory[i].ID)
	}
	gallery := input.Gallery
	for i := range gallery {
		gallery[i].ID = invitations.EnsureItemID(gallery[i].ID)
	}
	gifts := input.Gifts
	for i := range gifts {
		gifts[i].ID = invitations.EnsureItemID(gifts[i].ID)
	}

	settings := invitations.DefaultSettings()
	if input.Settings != nil {
		settings = *input.Settings
		if settings.MusicList == nil {
			settings.MusicList = []invitations.MusicItem{}
		}
		for i := range settings.MusicList {
			settings.MusicList[i].ID = invitations.EnsureItemID(settings.MusicList[i].ID)
		}
	}

	var err error
	if inv.Groom, err = marshalJSON(input.Groom); err != nil {
		return err
	}
	if inv.Bride, err = marshalJSON(input.Bride); err != nil {
		return err
	}
	if inv.Events, err = marshalJSON(emptyIfNil(input.Events)); err != nil {
		return err
	}
	if inv.LoveStory, err = marshalJSON(emptyIfNil(loveStory)); err != nil {
		return err
	}
	if inv.Gallery, err = marshalJSON(emptyIfNil(gallery)); err != nil {
		return err
	}
	if inv.Gifts, err = marshalJSON(emptyIfNil(gifts)); err != nil {
		return err
	}
	if inv.Settings, err = marshalJSON(settings); err != nil {
		return err
	}

	return nil
}

func marshalJSON(v any) (datatypes.JSON, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(encoded), nil
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func stringOrDefault(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
