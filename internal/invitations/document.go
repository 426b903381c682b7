package invitations

import "github.com/google/uuid"

// MusicSource is the closed set of playlist track origins.
type MusicSource string

const (
	MusicSourceMP3     MusicSource = "mp3"
	MusicSourceYouTube MusicSource = "youtube"
	MusicSourceUpload  MusicSource = "upload"
)

// Valid reports whether the value is a recognised track origin.
func (s MusicSource) Valid() bool {
	switch s {
	case MusicSourceMP3, MusicSourceYouTube, MusicSourceUpload:
		return true
	}
	return false
}

// CoupleInfo describes one half of the couple.
type CoupleInfo struct {
	Name       string `json:"name" validate:"required"`
	FullName   string `json:"full_name" validate:"required"`
	Photo      string `json:"photo"`
	FatherName string `json:"father_name" validate:"required"`
	MotherName string `json:"mother_name" validate:"required"`
	ChildOrder string `json:"child_order" validate:"required"`
	Instagram  string `json:"instagram"`
}

// EventInfo describes a ceremony or reception entry.
type EventInfo struct {
	Name      string `json:"name" validate:"required"`
	Date      string `json:"date" validate:"required"`
	TimeStart string `json:"time_start" validate:"required"`
	TimeEnd   string `json:"time_end" validate:"required"`
	VenueName string `json:"venue_name" validate:"required"`
	Address   string `json:"address" validate:"required"`
	MapsURL   string `json:"maps_url"`
	MapsEmbed string `json:"maps_embed"`
}

// LoveStoryItem is a dated milestone in the couple's story.
type LoveStoryItem struct {
	ID          string `json:"id"`
	Date        string `json:"date" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
}

// GalleryItem is a single photo with an optional caption.
type GalleryItem struct {
	ID      string `json:"id"`
	URL     string `json:"url" validate:"required"`
	Caption string `json:"caption"`
}

// GiftAccount is a bank account guests can transfer gifts to.
type GiftAccount struct {
	ID            string `json:"id"`
	BankName      string `json:"bank_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	AccountHolder string `json:"account_holder" validate:"required"`
}

// MusicItem is one playlist entry; at most one is active at a time.
type MusicItem struct {
	ID         string      `json:"id"`
	Title      string      `json:"title" validate:"required"`
	SourceType MusicSource `json:"source_type" validate:"omitempty,oneof=mp3 youtube upload"`
	URL        string      `json:"url" validate:"required"`
	IsActive   bool        `json:"is_active"`
}

// Settings is the per-invitation display and playback configuration.
type Settings struct {
	MusicURL       string      `json:"music_url"`
	MusicList      []MusicItem `json:"music_list"`
	ActiveMusicID  string      `json:"active_music_id"`
	PrimaryColor   string      `json:"primary_color"`
	SecondaryColor string      `json:"secondary_color"`
	AccentColor    string      `json:"accent_color"`
	FontHeading    string      `json:"font_heading"`
	FontBody       string      `json:"font_body"`
	AutoScroll     bool        `json:"auto_scroll"`
	ShowCountdown  bool        `json:"show_countdown"`
	ShowLoveStory  bool        `json:"show_love_story"`
	ShowGallery    bool        `json:"show_gallery"`
	ShowVideo      bool        `json:"show_video"`
	ShowGift       bool        `json:"show_gift"`
	ShowRSVP       bool        `json:"show_rsvp"`
	ShowMessages   bool        `json:"show_messages"`
}

// Default content for freshly created invitations.
const (
	DefaultTheme = "floral"

	DefaultOpeningText = "Dengan memohon rahmat dan ridho Allah SWT, kami bermaksud menyelenggarakan acara pernikahan"
	DefaultClosingText = "Merupakan suatu kehormatan dan kebahagiaan bagi kami apabila Bapak/Ibu/Saudara/i berkenan hadir untuk memberikan doa restu kepada kedua mempelai."

	DefaultQuranVerse = "Dan di antara tanda-tanda (kebesaran)-Nya ialah Dia menciptakan pasangan-pasangan untukmu dari jenismu sendiri, agar kamu cenderung dan merasa tenteram kepadanya, dan Dia menjadikan di antaramu rasa kasih dan sayang."
	DefaultQuranSurah = "Q.S Ar-Rum : 21"
)

// DefaultSettings returns the declared defaults for the settings sub-document.
func DefaultSettings() Settings {
	return Settings{
		MusicURL:       "",
		MusicList:      []MusicItem{},
		ActiveMusicID:  "",
		PrimaryColor:   "#B76E79",
		SecondaryColor: "#F5E6E8",
		AccentColor:    "#D4AF37",
		FontHeading:    "Playfair Display",
		FontBody:       "Manrope",
		AutoScroll:     true,
		ShowCountdown:  true,
		ShowLoveStory:  true,
		ShowGallery:    true,
		ShowVideo:      true,
		ShowGift:       true,
		ShowRSVP:       true,
		ShowMessages:   true,
	}
}

// EnsureItemID fills the identifier of a freshly submitted nested item.
func EnsureItemID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
