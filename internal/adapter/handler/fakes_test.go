package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minhtrandev/meeting-notes/internal/domain/entities"
	"github.com/minhtrandev/meeting-notes/internal/domain/repositories"
	"github.com/minhtrandev/meeting-notes/internal/usecase/summarizer"
	pkgvalidator "github.com/minhtrandev/meeting-notes/pkg/validator"
)

// fakeMeetingRepo is an in-memory MeetingRepository with the same observable
// behavior as the Postgres implementation: insertion order timestamps,
// created_at DESC listing, case-insensitive substring search.
type fakeMeetingRepo struct {
	meetings  []*entities.Meeting
	nextID    int64
	createErr error
	listErr   error
	deleteErr error
	creates   int
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{nextID: 1}
}

func (r *fakeMeetingRepo) Create(_ context.Context, m *entities.Meeting) error {
	r.creates++
	if r.createErr != nil {
		return r.createErr
	}
	m.ID = r.nextID
	// Monotonic timestamps so ordering is deterministic.
	m.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.nextID) * time.Minute)
	m.UpdatedAt = m.CreatedAt
	r.nextID++
	stored := *m
	r.meetings = append(r.meetings, &stored)
	return nil
}

func (r *fakeMeetingRepo) FindByID(_ context.Context, id int64) (*entities.Meeting, error) {
	for _, m := range r.meetings {
		if m.ID == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, entities.ErrMeetingNotFound
}

func (r *fakeMeetingRepo) List(_ context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}

	var matched []*entities.Meeting
	needle := strings.ToLower(filters.Search)
	for _, m := range r.meetings {
		if needle == "" ||
			strings.Contains(strings.ToLower(m.Title), needle) ||
			strings.Contains(strings.ToLower(m.Transcript), needle) {
			copied := *m
			matched = append(matched, &copied)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if filters.Offset >= len(matched) {
		return []*entities.Meeting{}, total, nil
	}
	end := filters.Offset + filters.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filters.Offset:end], total, nil
}

func (r *fakeMeetingRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i, m := range r.meetings {
		if m.ID == id {
			r.meetings = append(r.meetings[:i], r.meetings[i+1:]...)
			return nil
		}
	}
	return entities.ErrMeetingNotFound
}

// fakeSummarizer returns canned output and records the input it was given
type fakeSummarizer struct {
	out       *summarizer.SummarizeOutput
	err       error
	calls     int
	lastInput summarizer.SummarizeInput
}

func (f *fakeSummarizer) Summarize(_ context.Context, input summarizer.SummarizeInput) (*summarizer.SummarizeOutput, error) {
	f.calls++
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

// doRequest runs a request through a fully routed echo instance so path
// matching, binding and error writing behave exactly as in production
func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
