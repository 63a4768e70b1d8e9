package entities

import (
	"time"
)

// Default values applied when a field is omitted on creation
const (
	DefaultTitle    = "Untitled Meeting"
	DefaultLanguage = "en-US"
)

// Meeting represents a stored meeting transcript with its metadata and summary
type Meeting struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Date       time.Time `gorm:"type:date;not null" json:"date"`
	Language   string    `gorm:"type:varchar(10);not null;default:'en-US'" json:"language"`
	Transcript string    `gorm:"type:text;not null" json:"transcript"`
	Summary    string    `gorm:"type:text;not null" json:"summary"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting builds a Meeting with defaults applied for omitted fields.
// An empty title becomes DefaultTitle, an empty language becomes
// DefaultLanguage and a zero date becomes today.
func NewMeeting(title string, date time.Time, language, transcript, summary string) *Meeting {
	if title == "" {
		title = DefaultTitle
	}
	if language == "" {
		language = DefaultLanguage
	}
	if date.IsZero() {
		date = Today()
	}
	return &Meeting{
		Title:      title,
		Date:       date,
		Language:   language,
		Transcript: transcript,
		Summary:    summary,
	}
}

// Today returns the current calendar date truncated to midnight UTC
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string. Unparsable or empty input falls
// back to today's date, matching the create defaults.
func ParseDate(s string) time.Time {
	if s == "" {
		return Today()
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Today()
	}
	return d
}
