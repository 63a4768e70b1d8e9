package meeting

// MeetingResponse represents a full meeting record
type MeetingResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Language   string `json:"language"`
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// MeetingSummaryResponse represents the trimmed projection used in list views
type MeetingSummaryResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Language  string `json:"language"`
	CreatedAt string `json:"created_at"`
	Preview   string `json:"preview"`
}

// MeetingListResponse represents a paginated list of meetings
type MeetingListResponse struct {
	Meetings    []*MeetingSummaryResponse `json:"meetings"`
	Total       int64                     `json:"total"`
	Pages       int                       `json:"pages"`
	CurrentPage int                       `json:"current_page"`
}

// CreateMeetingResponse represents the response to a successful save
type CreateMeetingResponse struct {
	Success bool             `json:"success"`
	Meeting *MeetingResponse `json:"meeting"`
	Message string           `json:"message"`
}

// DeleteMeetingResponse represents the response to a successful delete
type DeleteMeetingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
