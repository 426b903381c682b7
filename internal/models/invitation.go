package models

import "gorm.io/datatypes"

// Invitation is a single wedding-invitation document owned by one user.
// Nested sub-documents (couples, events, galleries, settings) are stored as
// JSON columns so older rows may lack keys added by newer releases; the
// invitations package backfills those on every read path.
type Invitation struct {
	BaseModel
	UserID string `gorm:"type:uuid;index;not null" json:"user_id"`

	Theme      string `json:"theme"`
	CoverPhoto string `json:"cover_photo"`

	Groom  datatypes.JSON `gorm:"not null" json:"groom"`
	Bride  datatypes.JSON `gorm:"not null" json:"bride"`
	Events datatypes.JSON `gorm:"not null" json:"events"`

	LoveStory datatypes.JSON `json:"love_story"`
	Gallery   datatypes.JSON `json:"gallery"`
	Gifts     datatypes.JSON `json:"gifts"`

	OpeningText  string `json:"opening_text"`
	ClosingText  string `json:"closing_text"`
	VideoURL     string `json:"video_url"`
	StreamingURL string `json:"streaming_url"`
	QuranVerse   string `json:"quran_verse"`
	QuranSurah   string `json:"quran_surah"`

	Settings datatypes.JSON `json:"settings"`
}
