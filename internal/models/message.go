package models

// Message is a guest greeting on an invitation. The owner may attach a single
// reply; replying again overwrites the previous reply.
type Message struct {
	BaseModel
	InvitationID string `gorm:"type:uuid;index;not null" json:"invitation_id"`
	GuestName    string `gorm:"not null" json:"guest_name"`
	Message      string `gorm:"not null" json:"message"`
	Reply        string `json:"reply"`
}
