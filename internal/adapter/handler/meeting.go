package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/minhtrandev/meeting-notes/errors"
	"github.com/minhtrandev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/minhtrandev/meeting-notes/internal/adapter/presenter"
	"github.com/minhtrandev/meeting-notes/internal/domain/entities"
	"github.com/minhtrandev/meeting-notes/internal/domain/repositories"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

// Meeting handles meeting CRUD HTTP requests
type Meeting struct {
	repo   repositories.MeetingRepository
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(repo repositories.MeetingRepository, logger *zap.Logger) *Meeting {
	return &Meeting{repo: repo, logger: logger}
}

// ListMeetings handles GET /api/meetings
// @Summary      List meetings
// @Description  Gets a paginated list of meetings with optional title/transcript search
// @Tags         Meetings
// @Produce      json
// @Param        search    query     string  false  "Case-insensitive substring match on title or transcript"
// @Param        page      query     int     false  "Page number (default: 1)"
// @Param        per_page  query     int     false  "Items per page (default: 20)"
// @Success      200  {object}  meeting.MeetingListResponse  "Paginated meeting summaries"
// @Failure      400  {object}  common.ErrorResponse  "Invalid query parameters"
// @Failure      500  {object}  common.ErrorResponse  "Failed to list meetings"
// @Router       /api/meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req meeting.ListMeetingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if req.Page == 0 {
		req.Page = defaultPage
	}
	if req.PerPage == 0 {
		req.PerPage = defaultPerPage
	}

	filters := repositories.MeetingFilters{
		Search: req.Search,
		Limit:  req.PerPage,
		Offset: (req.Page - 1) * req.PerPage,
	}

	meetings, total, err := h.repo.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrStorageFailed("listing", err))
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingListResponse(meetings, total, req.Page, req.PerPage))
}

// GetMeeting handles GET /api/meetings/:id
// @Summary      Get meeting details
// @Description  Gets the full record of a specific meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse  "Full meeting record"
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Failure      500  {object}  common.ErrorResponse  "Failed to load meeting"
// @Router       /api/meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return notFound(c, "Meeting not found")
	}

	m, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		if stdErrors.Is(err, entities.ErrMeetingNotFound) {
			return HandleError(h.logger, c, apperrors.ErrMeetingNotFound(id))
		}
		return HandleError(h.logger, c, apperrors.ErrStorageFailed("loading", err))
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(m))
}

// CreateMeeting handles POST /api/meetings
// @Summary      Save a new meeting
// @Description  Saves a meeting record, applying defaults for omitted fields
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting fields"
// @Success      201  {object}  meeting.CreateMeetingResponse  "Meeting saved"
// @Failure      400  {object}  common.ErrorResponse  "Malformed request body"
// @Failure      500  {object}  common.ErrorResponse  "Failed to save meeting"
// @Router       /api/meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meeting.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m := entities.NewMeeting(
		req.Title,
		entities.ParseDate(req.Date),
		req.Language,
		req.Transcript,
		req.Summary,
	)

	if err := h.repo.Create(c.Request().Context(), m); err != nil {
		return HandleError(h.logger, c, apperrors.ErrStorageFailed("saving", err))
	}

	return c.JSON(http.StatusCreated, meeting.CreateMeetingResponse{
		Success: true,
		Meeting: presenter.ToMeetingResponse(m),
		Message: "Meeting saved successfully",
	})
}

// DeleteMeeting handles DELETE /api/meetings/:id
// @Summary      Delete a meeting
// @Description  Removes a meeting record by ID
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  meeting.DeleteMeetingResponse  "Meeting deleted"
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Failure      500  {object}  common.ErrorResponse  "Failed to delete meeting"
// @Router       /api/meetings/{id} [delete]
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return notFound(c, "Meeting not found")
	}

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		if stdErrors.Is(err, entities.ErrMeetingNotFound) {
			return HandleError(h.logger, c, apperrors.ErrMeetingNotFound(id))
		}
		return HandleError(h.logger, c, apperrors.ErrStorageFailed("deleting", err))
	}

	return c.JSON(http.StatusOK, meeting.DeleteMeetingResponse{
		Success: true,
		Message: "Meeting deleted successfully",
	})
}
