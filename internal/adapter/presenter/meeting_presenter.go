package presenter

import (
	"time"

	"github.com/minhtrandev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/minhtrandev/meeting-notes/internal/domain/entities"
)

const previewLength = 100

// ToMeetingResponse converts a Meeting entity to the full MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	return &meeting.MeetingResponse{
		ID:         m.ID,
		Title:      m.Title,
		Date:       m.Date.Format("2006-01-02"),
		Language:   m.Language,
		Transcript: m.Transcript,
		Summary:    m.Summary,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  m.UpdatedAt.Format(time.RFC3339),
	}
}

// ToMeetingSummaryResponse converts a Meeting entity to the list projection
func ToMeetingSummaryResponse(m *entities.Meeting) *meeting.MeetingSummaryResponse {
	if m == nil {
		return nil
	}

	return &meeting.MeetingSummaryResponse{
		ID:        m.ID,
		Title:     m.Title,
		Date:      m.Date.Format("2006-01-02"),
		Language:  m.Language,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		Preview:   Preview(m.Transcript),
	}
}

// ToMeetingListResponse converts a slice of Meeting entities to MeetingListResponse
func ToMeetingListResponse(meetings []*entities.Meeting, total int64, page, perPage int) *meeting.MeetingListResponse {
	summaries := make([]*meeting.MeetingSummaryResponse, len(meetings))
	for i, m := range meetings {
		summaries[i] = ToMeetingSummaryResponse(m)
	}

	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}

	return &meeting.MeetingListResponse{
		Meetings:    summaries,
		Total:       total,
		Pages:       totalPages,
		CurrentPage: page,
	}
}

// Preview truncates a transcript to the list-view excerpt length,
// appending an ellipsis marker when the text was cut.
func Preview(transcript string) string {
	runes := []rune(transcript)
	if len(runes) <= previewLength {
		return transcript
	}
	return string(runes[:previewLength]) + "..."
}
