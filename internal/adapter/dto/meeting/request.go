package meeting

// CreateMeetingRequest represents the request to save a new meeting.
// Omitted fields get the documented defaults: title "Untitled Meeting",
// date today, language "en-US", empty transcript and summary.
type CreateMeetingRequest struct {
	Title      string `json:"title,omitempty" validate:"omitempty,max=255"`
	Date       string `json:"date,omitempty"` // YYYY-MM-DD
	Language   string `json:"language,omitempty" validate:"omitempty,max=10"`
	Transcript string `json:"transcript,omitempty"`
	Summary    string `json:"summary,omitempty"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Search  string `query:"search"`
	Page    int    `query:"page" validate:"omitempty,min=1"`
	PerPage int    `query:"per_page" validate:"omitempty,min=1,max=100"`
}
