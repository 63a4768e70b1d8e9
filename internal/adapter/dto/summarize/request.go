package summarize

// SummarizeRequest represents the request to summarize a transcript.
// The api_key falls back to the configured OPENAI_API_KEY when omitted.
type SummarizeRequest struct {
	APIKey       string `json:"api_key,omitempty"`
	MeetingText  string `json:"meeting_text"`
	MeetingTitle string `json:"meeting_title,omitempty"`
	MeetingDate  string `json:"meeting_date,omitempty"` // YYYY-MM-DD
}
