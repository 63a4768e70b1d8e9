package summarizer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/minhtrandev/meeting-notes/internal/domain/entities"
	"github.com/minhtrandev/meeting-notes/pkg/config"
)

// Generation settings for the two model calls. Low temperature keeps the
// output deterministic-leaning; the title call is bounded much tighter
// than the summary call.
const (
	titleMaxTokens   = 50
	summaryMaxTokens = 600
	temperature      = 0.3

	// Only the head of the transcript is sent for title generation.
	titleContextChars = 500
)

const titleSystemPrompt = "Generate a short, concise and descriptive title for this meeting text. Return only the title, don't add anything else."

const summarySystemPrompt = "You are a meeting summarizer. Summarize the given meeting text by extracting main topics, decisions, and action items. Include date and title information at the beginning of the summary. Respond in English."

// SummarizeInput carries the transcript and its optional context
type SummarizeInput struct {
	Transcript string
	Title      string
	Date       string // YYYY-MM-DD, passed through as context only
	APIKey     string // falls back to the configured key when empty
}

// SummarizeOutput carries the generated summary and, when no title was
// supplied, the generated title
type SummarizeOutput struct {
	Summary        string
	GeneratedTitle string
}

// Service defines the summarization operations
type Service interface {
	Summarize(ctx context.Context, input SummarizeInput) (*SummarizeOutput, error)
}

type service struct {
	cfg    *config.OpenAIConfig
	logger *zap.Logger
}

// NewService constructs a new summarizer service
func NewService(cfg *config.OpenAIConfig, logger *zap.Logger) Service {
	return &service{cfg: cfg, logger: logger}
}

// Summarize produces a summary (and a title when none is supplied) for the
// given transcript. It persists nothing; the caller owns persistence.
// Failures are reported, not retried.
func (s *service) Summarize(ctx context.Context, input SummarizeInput) (*SummarizeOutput, error) {
	apiKey := input.APIKey
	if apiKey == "" {
		apiKey = s.cfg.APIKey
	}
	if apiKey == "" {
		return nil, entities.ErrMissingAPIKey
	}
	if strings.TrimSpace(input.Transcript) == "" {
		return nil, entities.ErrMissingTranscript
	}

	client := s.newClient(apiKey)

	title := strings.TrimSpace(input.Title)
	generatedTitle := ""
	if title == "" {
		t, err := s.generateTitle(ctx, client, input.Transcript)
		if err != nil {
			return nil, fmt.Errorf("title generation failed: %w", err)
		}
		generatedTitle = t
		title = t

		if s.logger != nil {
			s.logger.Info("generated meeting title", zap.String("title", generatedTitle))
		}
	}

	summary, err := s.generateSummary(ctx, client, input.Transcript, title, input.Date)
	if err != nil {
		return nil, fmt.Errorf("summary generation failed: %w", err)
	}

	return &SummarizeOutput{
		Summary:        summary,
		GeneratedTitle: generatedTitle,
	}, nil
}

// newClient builds a go-openai client for the resolved API key. The base
// URL override keeps the client pointable at compatible providers and at
// test servers.
func (s *service) newClient(apiKey string) *openai.Client {
	clientCfg := openai.DefaultConfig(apiKey)
	if s.cfg.BaseURL != "" {
		clientCfg.BaseURL = s.cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{
		Timeout: time.Duration(s.cfg.TimeoutSeconds) * time.Second,
	}
	return openai.NewClientWithConfig(clientCfg)
}

// generateTitle asks the model for a short descriptive title based on the
// head of the transcript
func (s *service) generateTitle(ctx context.Context, client *openai.Client, transcript string) (string, error) {
	head := transcript
	if runes := []rune(transcript); len(runes) > titleContextChars {
		head = string(runes[:titleContextChars])
	}

	content, err := s.chat(ctx, client, titleSystemPrompt,
		fmt.Sprintf("Generate title for this meeting:\n\n%s...", head),
		titleMaxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// generateSummary asks the model for the summary, with date and title
// (when known) as leading context
func (s *service) generateSummary(ctx context.Context, client *openai.Client, transcript, title, date string) (string, error) {
	var sb strings.Builder
	if date != "" {
		fmt.Fprintf(&sb, "Meeting Date: %s\n", date)
	}
	if title != "" {
		fmt.Fprintf(&sb, "Title: %s\n\n", title)
	}
	fmt.Fprintf(&sb, "Meeting Text:\n%s", transcript)

	return s.chat(ctx, client, summarySystemPrompt, sb.String(), summaryMaxTokens)
}

// chat performs one chat-completion call and returns the first choice
func (s *service) chat(ctx context.Context, client *openai.Client, systemPrompt, userContent string, maxTokens int) (string, error) {
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", entities.ErrEmptyModelResponse
	}
	return resp.Choices[0].Message.Content, nil
}
