package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtrandev/meeting-notes/internal/domain/entities"
	"github.com/minhtrandev/meeting-notes/pkg/config"
)

type recordedCall struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// newModelServer returns a fake OpenAI-compatible server that records every
// chat-completion request and replies with the given contents in order.
func newModelServer(t *testing.T, replies ...string) (*httptest.Server, *[]recordedCall) {
	t.Helper()
	var calls []recordedCall

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		var call recordedCall
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		calls = append(calls, call)

		if len(calls) > len(replies) {
			t.Fatalf("unexpected extra model call %d", len(calls))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": replies[len(calls)-1]}},
			},
		})
	}))
	return ts, &calls
}

func newTestService(baseURL, apiKey string) Service {
	return NewService(&config.OpenAIConfig{
		APIKey:         apiKey,
		BaseURL:        baseURL,
		Model:          "gpt-3.5-turbo",
		TimeoutSeconds: 5,
	}, nil)
}

func TestSummarize_MissingAPIKey(t *testing.T) {
	ts, calls := newModelServer(t)
	defer ts.Close()

	svc := newTestService(ts.URL+"/v1", "")
	_, err := svc.Summarize(context.Background(), SummarizeInput{Transcript: "hello"})

	assert.ErrorIs(t, err, entities.ErrMissingAPIKey)
	assert.Empty(t, *calls, "no external call should be made without a key")
}

func TestSummarize_MissingTranscript(t *testing.T) {
	ts, calls := newModelServer(t)
	defer ts.Close()

	svc := newTestService(ts.URL+"/v1", "sk-test")
	_, err := svc.Summarize(context.Background(), SummarizeInput{Transcript: "   "})

	assert.ErrorIs(t, err, entities.ErrMissingTranscript)
	assert.Empty(t, *calls)
}

func TestSummarize_RequestKeyOverridesConfig(t *testing.T) {
	ts, _ := newModelServer(t, "A summary")
	defer ts.Close()

	// No configured key, but the caller supplies one.
	svc := newTestService(ts.URL+"/v1", "")
	out, err := svc.Summarize(context.Background(), SummarizeInput{
		Transcript: "we talked",
		Title:      "Weekly Sync",
		APIKey:     "sk-from-request",
	})

	require.NoError(t, err)
	assert.Equal(t, "A summary", out.Summary)
}

func TestSummarize_WithProvidedTitle(t *testing.T) {
	ts, calls := newModelServer(t, "The summary text")
	defer ts.Close()

	svc := newTestService(ts.URL+"/v1", "sk-test")
	out, err := svc.Summarize(context.Background(), SummarizeInput{
		Transcript: "we discussed the roadmap",
		Title:      "Roadmap Review",
		Date:       "2026-08-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "The summary text", out.Summary)
	assert.Empty(t, out.GeneratedTitle, "no title call when one is provided")

	require.Len(t, *calls, 1, "exactly one model call with a provided title")
	call := (*calls)[0]
	assert.Equal(t, summaryMaxTokens, call.MaxTokens)
	assert.InDelta(t, temperature, call.Temperature, 0.001)
	require.Len(t, call.Messages, 2)
	assert.Equal(t, "system", call.Messages[0].Role)
	assert.Contains(t, call.Messages[0].Content, "main topics, decisions, and action items")
	assert.Contains(t, call.Messages[1].Content, "Meeting Date: 2026-08-31\n")
	assert.Contains(t, call.Messages[1].Content, "Title: Roadmap Review\n\n")
	assert.Contains(t, call.Messages[1].Content, "Meeting Text:\nwe discussed the roadmap")
}

func TestSummarize_GeneratesTitleWhenAbsent(t *testing.T) {
	ts, calls := newModelServer(t, "  Budget Planning  ", "Summary with context")
	defer ts.Close()

	svc := newTestService(ts.URL+"/v1", "sk-test")
	out, err := svc.Summarize(context.Background(), SummarizeInput{
		Transcript: "let's plan the budget",
	})

	require.NoError(t, err)
	assert.Equal(t, "Budget Planning", out.GeneratedTitle, "title is trimmed")
	assert.Equal(t, "Summary with context", out.Summary)

	require.Len(t, *calls, 2)

	titleCall := (*calls)[0]
	assert.Equal(t, titleMaxTokens, titleCall.MaxTokens)
	require.Len(t, titleCall.Messages, 2)
	assert.Contains(t, titleCall.Messages[1].Content, "Generate title for this meeting:")

	summaryCall := (*calls)[1]
	assert.Equal(t, summaryMaxTokens, summaryCall.MaxTokens)
	assert.Contains(t, summaryCall.Messages[1].Content, "Title: Budget Planning\n\n",
		"generated title feeds the summary context")
}

func TestSummarize_TitleContextTruncated(t *testing.T) {
	long := strings.Repeat("x", 2000)
	ts, calls := newModelServer(t, "Long Title", "Long Summary")
	defer ts.Close()

	svc := newTestService(ts.URL+"/v1", "sk-test")
	_, err := svc.Summarize(context.Background(), SummarizeInput{Transcript: long})
	require.NoError(t, err)

	titleContent := (*calls)[0].Messages[1].Content
	assert.Contains(t, titleContent, strings.Repeat("x", titleContextChars)+"...")
	assert.NotContains(t, titleContent, strings.Repeat("x", titleContextChars+1),
		"only the transcript head is sent for title generation")

	// The summary call still carries the full transcript.
	assert.Contains(t, (*calls)[1].Messages[1].Content, long)
}

func TestSummarize_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "model overloaded", "type": "server_error"},
		})
	}))
	defer ts.Close()

	svc := newTestService(ts.URL+"/v1", "sk-test")
	_, err := svc.Summarize(context.Background(), SummarizeInput{Transcript: "hello", Title: "T"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "summary generation failed")
}

func TestSummarize_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	svc := newTestService(ts.URL+"/v1", "sk-test")
	_, err := svc.Summarize(context.Background(), SummarizeInput{Transcript: "hello", Title: "T"})

	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrEmptyModelResponse)
}
