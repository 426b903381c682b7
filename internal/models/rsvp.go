package models

// Attendance is the closed set of RSVP answers a guest may submit.
type Attendance string

const (
	AttendanceYes       Attendance = "hadir"
	AttendanceNo        Attendance = "tidak_hadir"
	AttendanceUncertain Attendance = "belum_pasti"
)

// Valid reports whether the value is one of the recognised answers.
func (a Attendance) Valid() bool {
	switch a {
	case AttendanceYes, AttendanceNo, AttendanceUncertain:
		return true
	}
	return false
}

// RSVP records a guest's attendance answer for one invitation. Guests create
// these without authenticating; only the invitation owner may read or delete
// them.
type RSVP struct {
	BaseModel
	InvitationID string     `gorm:"type:uuid;index;not null" json:"invitation_id"`
	GuestName    string     `gorm:"not null" json:"guest_name"`
	Phone        string     `json:"phone"`
	Attendance   Attendance `gorm:"not null" json:"attendance"`
	GuestCount   int        `gorm:"default:1" json:"guest_count"`
}
