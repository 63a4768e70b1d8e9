package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/minhtrandev/meeting-notes/errors"
	"github.com/minhtrandev/meeting-notes/internal/adapter/dto/summarize"
	"github.com/minhtrandev/meeting-notes/internal/domain/entities"
	"github.com/minhtrandev/meeting-notes/internal/domain/repositories"
	"github.com/minhtrandev/meeting-notes/internal/usecase/summarizer"
)

// Summarize handles the transcript summarization endpoint
type Summarize struct {
	svc    summarizer.Service
	repo   repositories.MeetingRepository
	logger *zap.Logger
}

// NewSummarizeHandler creates a new summarize handler
func NewSummarizeHandler(svc summarizer.Service, repo repositories.MeetingRepository, logger *zap.Logger) *Summarize {
	return &Summarize{svc: svc, repo: repo, logger: logger}
}

// Summarize handles POST /summarize
// @Summary      Summarize a meeting transcript
// @Description  Generates a title (when none is given) and a summary via the language model, then persists the result as a new meeting. A storage failure after a successful summarization is reported in the database_error field instead of failing the request, so the already-billed model output is never discarded.
// @Tags         Summarize
// @Accept       json
// @Produce      json
// @Param        request  body      summarize.SummarizeRequest  true  "Transcript and optional context"
// @Success      200  {object}  summarize.SummarizeResponse  "Summary, with meeting_id when the auto-save succeeded"
// @Failure      400  {object}  common.ErrorResponse  "Missing API key or meeting text"
// @Failure      500  {object}  common.ErrorResponse  "Model call failed"
// @Router       /summarize [post]
func (h *Summarize) Summarize(c echo.Context) error {
	var req summarize.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrValidation("Invalid request body"))
	}

	out, err := h.svc.Summarize(c.Request().Context(), summarizer.SummarizeInput{
		Transcript: req.MeetingText,
		Title:      strings.TrimSpace(req.MeetingTitle),
		Date:       req.MeetingDate,
		APIKey:     req.APIKey,
	})
	if err != nil {
		switch {
		case stdErrors.Is(err, entities.ErrMissingAPIKey):
			return HandleError(h.logger, c, apperrors.ErrValidation(
				"API key required. Please define OPENAI_API_KEY in .env file or enter in interface."))
		case stdErrors.Is(err, entities.ErrMissingTranscript):
			return HandleError(h.logger, c, apperrors.ErrValidation("Meeting text required"))
		default:
			return HandleError(h.logger, c, apperrors.ErrSummarizationFailed(err))
		}
	}

	resp := summarize.SummarizeResponse{
		Summary:        out.Summary,
		GeneratedTitle: out.GeneratedTitle,
	}

	// Auto-save the result. The summarization already succeeded (and was
	// billed), so a storage failure downgrades to a response field rather
	// than discarding the summary.
	title := strings.TrimSpace(req.MeetingTitle)
	if title == "" {
		title = out.GeneratedTitle
	}
	m := entities.NewMeeting(
		title,
		entities.ParseDate(req.MeetingDate),
		"", // language stays the en-US default; no detection is attempted
		req.MeetingText,
		out.Summary,
	)

	if err := h.repo.Create(c.Request().Context(), m); err != nil {
		if h.logger != nil {
			h.logger.Error("failed to save summarized meeting",
				zap.String("request_id", getRequestID(c)),
				zap.Error(err),
			)
		}
		resp.DatabaseError = fmt.Sprintf("Could not save to database: %v", err)
		return c.JSON(http.StatusOK, resp)
	}

	resp.MeetingID = m.ID
	resp.SavedToDatabase = true
	return c.JSON(http.StatusOK, resp)
}
