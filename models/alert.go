package models

// AlertType distinguishes lifecycle notices from system and gamification ones.
type AlertType string

const (
	AlertStatus AlertType = "status"
	AlertSystem AlertType = "system"
	AlertAward  AlertType = "award"
)

// UserAlert is a user-visible notification. Time is a display string, not a
// machine timestamp. Read only ever flips false to true.
type UserAlert struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Time    string    `json:"time"`
	Read    bool      `json:"read"`
	Type    AlertType `json:"type"`
}
