// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/internal/httpclient"
)

// pollInterval is the fixed delay between run status retrievals.
// The service offers no push channel for non-streaming runs.
const pollInterval = time.Second

type runRequest struct {
	AssistantID            string   `json:"assistant_id"`
	Model                  string   `json:"model,omitempty"`
	Instructions           string   `json:"instructions,omitempty"`
	AdditionalInstructions string   `json:"additional_instructions,omitempty"`
	Temperature            *float32 `json:"temperature,omitempty"`
	Tools                  []tool   `json:"tools,omitempty"`
	ResponseFormat         any      `json:"response_format,omitempty"`
}

type callable interface {
	ID() string
	Call(ctx context.Context, argument string) (assistant.Message, error)
}

// run creates a run for the thread and polls it until it reaches a terminal
// state, dispatching function tool calls along the way. The final assistant
// message is appended to the thread.
func (e Executor) run(
	ctx context.Context,
	asst *assistant.Assistant,
	thread *assistant.Thread,
	opts []assistant.Option,
) error {
	request := runRequest{AssistantID: asst.ID}
	functions := make(map[string]callable)
	for _, t := range asst.Tools {
		if call, ok := t.(callable); ok {
			functions[call.ID()] = call
		}
	}
	for _, opt := range append(append([]assistant.Option{}, asst.Options...), opts...) {
		switch o := opt.(type) {
		case assistant.ToolOption:
			tools, err := toTools(o.Tools)
			if err != nil {
				return err
			}
			request.Tools = append(request.Tools, tools...)
			for _, t := range o.Tools {
				if call, ok := t.(callable); ok {
					functions[call.ID()] = call
				}
			}
		case funcOption:
			o.Apply(&request)
		}
	}

	current, err := httpclient.Post[runObject](ctx, "/threads/"+thread.ID+"/runs", request, e.clientOptions...)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}

	for {
		switch current.Status {
		case "queued", "in_progress", "cancelling":
			select {
			case <-ctx.Done():
				return ctx.Err() //nolint:wrapcheck
			case <-time.After(pollInterval):
			}
			current, err = httpclient.Get[runObject](ctx, "/threads/"+thread.ID+"/runs/"+current.ID, e.clientOptions...)
			if err != nil {
				return fmt.Errorf("retrieve run: %w", err)
			}
		case "requires_action":
			current, err = e.submitToolOutputs(ctx, current, functions)
			if err != nil {
				return err
			}
		case "completed":
			message, err := e.latestMessage(ctx, thread.ID)
			if err != nil {
				return err
			}
			thread.Messages = append(thread.Messages, message)

			return nil
		default:
			if current.LastError != nil {
				return fmt.Errorf("run %s: %s: %s", //nolint:err113
					current.Status, current.LastError.Code, current.LastError.Message)
			}

			return fmt.Errorf("run finished with status %s", current.Status) //nolint:err113
		}
	}
}

// submitToolOutputs calls the function for every tool call requested by the
// run and submits the outputs back to the server.
func (e Executor) submitToolOutputs(
	ctx context.Context,
	current runObject,
	functions map[string]callable,
) (runObject, error) {
	type output struct {
		ToolCallID string `json:"tool_call_id"`
		Output     string `json:"output"`
	}
	outputs := struct {
		ToolOutputs []output `json:"tool_outputs"`
	}{
		ToolOutputs: make([]output, 0, len(current.RequiredAction.SubmitToolOutputs.ToolCalls)),
	}

	for _, call := range current.RequiredAction.SubmitToolOutputs.ToolCalls {
		if call.Type != "function" {
			continue
		}
		function := functions[call.Function.Name]
		if function == nil {
			return runObject{}, fmt.Errorf("no function registered for tool call %q", call.Function.Name) //nolint:err113
		}

		var text string
		result, err := function.Call(ctx, call.Function.Arguments)
		if err != nil {
			text = fmt.Sprintf(`{"error": %q}`, err.Error())
		} else {
			for _, c := range result.Content {
				if t, ok := c.(assistant.Text); ok {
					text = t.Text

					break
				}
			}
		}
		outputs.ToolOutputs = append(outputs.ToolOutputs, output{
			ToolCallID: call.ID,
			Output:     text,
		})
	}

	next, err := httpclient.Post[runObject](ctx,
		"/threads/"+current.ThreadID+"/runs/"+current.ID+"/submit_tool_outputs",
		outputs, e.clientOptions...)
	if err != nil {
		return runObject{}, fmt.Errorf("submit tool outputs: %w", err)
	}

	return next, nil
}
