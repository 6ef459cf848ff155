// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/openai"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type weatherQuery struct {
	City string `json:"city"`
}

// step is a single expected request and its canned response.
type step struct {
	method   string
	path     string
	wantBody string
	status   int
	response string
}

// scripted returns an executor whose transport replays the given steps in
// order, failing the test on any unexpected request.
func scripted(t *testing.T, steps []step) openai.Executor {
	t.Helper()

	index := 0
	transport := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		require.Less(t, index, len(steps), "unexpected request %s %s", req.Method, req.URL.Path)
		current := steps[index]
		index++

		assert.Equal(t, current.method, req.Method)
		assert.Equal(t, current.path, req.URL.Path)
		assert.Equal(t, "Bearer sk-test", req.Header.Get("Authorization"))
		assert.Equal(t, "assistants=v2", req.Header.Get("OpenAI-Beta"))
		if current.wantBody != "" {
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			assert.JSONEq(t, current.wantBody, string(body))
		}

		status := current.status
		if status == 0 {
			status = http.StatusOK
		}

		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(current.response)),
		}, nil
	})

	return openai.NewExecutor(
		openai.WithAPIKey("sk-test"),
		openai.WithHTTPClient(&http.Client{Transport: transport}),
	)
}

func TestRun_Completed(t *testing.T) {
	t.Parallel()

	executor := scripted(t, []step{
		{
			method: http.MethodPost, path: "/v1/threads",
			wantBody: `{"messages": [{"role": "user", "content": [{"type": "text", "text": "Hello"}]}]}`,
			response: `{"id": "thread_1"}`,
		},
		{
			method: http.MethodPost, path: "/v1/threads/thread_1/runs",
			wantBody: `{"assistant_id": "asst_1"}`,
			response: `{"id": "run_1", "thread_id": "thread_1", "status": "queued"}`,
		},
		{
			method: http.MethodGet, path: "/v1/threads/thread_1/runs/run_1",
			response: `{"id": "run_1", "thread_id": "thread_1", "status": "completed"}`,
		},
		{
			method: http.MethodGet, path: "/v1/threads/thread_1/messages",
			response: `{"data": [{"id": "msg_2", "role": "assistant",
				"content": [{"type": "text", "text": {"value": "Hi there!"}}]}]}`,
		},
	})

	asst := &assistant.Assistant{ID: "asst_1", Executor: executor}
	thread := &assistant.Thread{}
	answer, err := assistant.Run[string, string](context.Background(), asst, thread, "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there!", answer)
	assert.Equal(t, "thread_1", thread.ID)
	require.Equal(t, 2, len(thread.Messages))
	assert.Equal(t, assistant.RoleAssistant, thread.Messages[1].Role)
}

func TestRun_ToolCall(t *testing.T) {
	t.Parallel()

	executor := scripted(t, []step{
		{
			method:   http.MethodPost, path: "/v1/threads",
			response: `{"id": "thread_1"}`,
		},
		{
			method: http.MethodPost, path: "/v1/threads/thread_1/runs",
			wantBody: `{
				"assistant_id": "asst_1",
				"tools": [{"type": "function", "function": {
					"name": "get_weather",
					"description": "Returns the current weather for a city.",
					"strict": true,
					"parameters": {
						"type": "object",
						"properties": {"city": {"type": "string"}},
						"required": ["city"],
						"additionalProperties": false
					}
				}}]
			}`,
			response: `{"id": "run_1", "thread_id": "thread_1", "status": "requires_action",
				"required_action": {"submit_tool_outputs": {"tool_calls": [
					{"id": "call_1", "type": "function",
					 "function": {"name": "get_weather", "arguments": "{\"city\": \"Lisbon\"}"}}
				]}}}`,
		},
		{
			method: http.MethodPost, path: "/v1/threads/thread_1/runs/run_1/submit_tool_outputs",
			wantBody: `{"tool_outputs": [{"tool_call_id": "call_1", "output": "sunny in Lisbon"}]}`,
			response: `{"id": "run_1", "thread_id": "thread_1", "status": "completed"}`,
		},
		{
			method: http.MethodGet, path: "/v1/threads/thread_1/messages",
			response: `{"data": [{"id": "msg_2", "role": "assistant",
				"content": [{"type": "text", "text": {"value": "It is sunny in Lisbon."}}]}]}`,
		},
	})

	weather := assistant.Function[weatherQuery, string]{
		Name:        "get_weather",
		Description: "Returns the current weather for a city.",
		Strict:      true,
		Function: func(_ context.Context, query weatherQuery) (string, error) {
			return "sunny in " + query.City, nil
		},
	}

	asst := &assistant.Assistant{ID: "asst_1", Executor: executor}
	answer, err := assistant.Run[string, string](context.Background(), asst, &assistant.Thread{},
		"What's the weather in Lisbon?", assistant.WithTool(weather))
	require.NoError(t, err)
	assert.Equal(t, "It is sunny in Lisbon.", answer)
}

func TestRun_ToolCallError(t *testing.T) {
	t.Parallel()

	executor := scripted(t, []step{
		{
			method:   http.MethodPost, path: "/v1/threads",
			response: `{"id": "thread_1"}`,
		},
		{
			method: http.MethodPost, path: "/v1/threads/thread_1/runs",
			response: `{"id": "run_1", "thread_id": "thread_1", "status": "requires_action",
				"required_action": {"submit_tool_outputs": {"tool_calls": [
					{"id": "call_1", "type": "function",
					 "function": {"name": "get_weather", "arguments": "{}"}}
				]}}}`,
		},
		{
			method: http.MethodPost, path: "/v1/threads/thread_1/runs/run_1/submit_tool_outputs",
			wantBody: `{"tool_outputs": [{"tool_call_id": "call_1",
				"output": "{\"error\": \"call function: city is required\"}"}]}`,
			response: `{"id": "run_1", "thread_id": "thread_1", "status": "completed"}`,
		},
		{
			method: http.MethodGet, path: "/v1/threads/thread_1/messages",
			response: `{"data": [{"id": "msg_2", "role": "assistant",
				"content": [{"type": "text", "text": {"value": "I could not determine the city."}}]}]}`,
		},
	})

	weather := assistant.Function[weatherQuery, string]{
		Name: "get_weather",
		Function: func(_ context.Context, query weatherQuery) (string, error) {
			if query.City == "" {
				return "", errors.New("city is required")
			}

			return "sunny", nil
		},
	}

	asst := &assistant.Assistant{ID: "asst_1", Executor: executor}
	answer, err := assistant.Run[string, string](context.Background(), asst, &assistant.Thread{},
		"What's the weather?", assistant.WithTool(weather))
	require.NoError(t, err)
	assert.Equal(t, "I could not determine the city.", answer)
}

func TestRun_UnknownFunction(t *testing.T) {
	t.Parallel()

	executor := scripted(t, []step{
		{
			method:   http.MethodPost, path: "/v1/threads",
			response: `{"id": "thread_1"}`,
		},
		{
			method: http.MethodPost, path: "/v1/threads/thread_1/runs",
			response: `{"id": "run_1", "thread_id": "thread_1", "status": "requires_action",
				"required_action": {"submit_tool_outputs": {"tool_calls": [
					{"id": "call_1", "type": "function",
					 "function": {"name": "get_weather", "arguments": "{}"}}
				]}}}`,
		},
	})

	asst := &assistant.Assistant{ID: "asst_1", Executor: executor}
	_, err := assistant.Run[string, string](context.Background(), asst, &assistant.Thread{}, "Hello")
	assert.EqualError(t, err, `run thread with executor: no function registered for tool call "get_weather"`)
}

func TestRun_Failed(t *testing.T) {
	t.Parallel()

	executor := scripted(t, []step{
		{
			method:   http.MethodPost, path: "/v1/threads",
			response: `{"id": "thread_1"}`,
		},
		{
			method: http.MethodPost, path: "/v1/threads/thread_1/runs",
			response: `{"id": "run_1", "thread_id": "thread_1", "status": "failed",
				"last_error": {"code": "rate_limit_exceeded", "message": "Rate limit reached."}}`,
		},
	})

	asst := &assistant.Assistant{ID: "asst_1", Executor: executor}
	_, err := assistant.Run[string, string](context.Background(), asst, &assistant.Thread{}, "Hello")
	assert.EqualError(t, err,
		"run thread with executor: run failed: rate_limit_exceeded: Rate limit reached.")
}

func TestRun_PerRunOptions(t *testing.T) {
	t.Parallel()

	executor := scripted(t, []step{
		{
			method:   http.MethodPost, path: "/v1/threads",
			response: `{"id": "thread_1"}`,
		},
		{
			method: http.MethodPost, path: "/v1/threads/thread_1/runs",
			wantBody: `{
				"assistant_id": "asst_1",
				"model": "gpt-4o",
				"instructions": "Answer tersely.",
				"additional_instructions": "Cite the relevant section.",
				"temperature": 0.2
			}`,
			response: `{"id": "run_1", "thread_id": "thread_1", "status": "completed"}`,
		},
		{
			method: http.MethodGet, path: "/v1/threads/thread_1/messages",
			response: `{"data": [{"id": "msg_2", "role": "assistant",
				"content": [{"type": "text", "text": {"value": "Terse answer."}}]}]}`,
		},
	})

	asst := &assistant.Assistant{ID: "asst_1", Executor: executor}
	answer, err := assistant.Run[string, string](context.Background(), asst, &assistant.Thread{}, "Hello",
		openai.WithModel("gpt-4o"),
		openai.WithInstructions("Answer tersely."),
		openai.WithAdditionalInstructions("Cite the relevant section."),
		openai.WithTemperature(0.2),
	)
	require.NoError(t, err)
	assert.Equal(t, "Terse answer.", answer)
}

func TestRun_JSONResponse(t *testing.T) {
	t.Parallel()

	executor := scripted(t, []step{
		{
			method:   http.MethodPost, path: "/v1/threads",
			response: `{"id": "thread_1"}`,
		},
		{
			method: http.MethodPost, path: "/v1/threads/thread_1/runs",
			wantBody: `{"assistant_id": "asst_1", "response_format": {"type": "json_object"}}`,
			response: `{"id": "run_1", "thread_id": "thread_1", "status": "completed"}`,
		},
		{
			method: http.MethodGet, path: "/v1/threads/thread_1/messages",
			response: `{"data": [{"id": "msg_2", "role": "assistant",
				"content": [{"type": "text", "text":
					{"value": "` + "```json\\n{\\\"city\\\": \\\"Lisbon\\\"}\\n```" + `"}}]}]}`,
		},
	})

	asst := &assistant.Assistant{ID: "asst_1", Executor: executor}
	result, err := assistant.Run[string, weatherQuery](
		context.Background(), asst, &assistant.Thread{}, "Where?", openai.WithJSONResponse())
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", result.City)
}
