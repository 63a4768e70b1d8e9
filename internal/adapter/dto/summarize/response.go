package summarize

// SummarizeResponse represents the result of a summarization call.
// MeetingID and SavedToDatabase are present only when the auto-save
// succeeded; DatabaseError carries the persistence failure otherwise.
// The summary itself is never discarded by a storage failure.
type SummarizeResponse struct {
	Summary         string `json:"summary"`
	MeetingID       int64  `json:"meeting_id,omitempty"`
	SavedToDatabase bool   `json:"saved_to_database,omitempty"`
	GeneratedTitle  string `json:"generated_title,omitempty"`
	DatabaseError   string `json:"database_error,omitempty"`
}
