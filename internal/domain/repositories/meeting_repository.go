package repositories

import (
	"context"

	"github.com/minhtrandev/meeting-notes/internal/domain/entities"
)

// MeetingFilters holds filtering and pagination options for listing meetings
type MeetingFilters struct {
	Search string // case-insensitive substring match on title or transcript
	Limit  int
	Offset int
}

// MeetingRepository defines the interface for meeting persistence
type MeetingRepository interface {
	// Create inserts a new meeting. The write is atomic: on failure no
	// partial record persists.
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID.
	// Returns entities.ErrMeetingNotFound if no such id exists.
	FindByID(ctx context.Context, id int64) (*entities.Meeting, error)

	// List retrieves meetings ordered by created_at descending, applying
	// the given filters, and returns the total count of matching records.
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, int64, error)

	// Delete removes a meeting by its ID.
	// Returns entities.ErrMeetingNotFound if no such id exists.
	Delete(ctx context.Context, id int64) error
}
