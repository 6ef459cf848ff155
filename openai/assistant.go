// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/internal/httpclient"
)

type assistantRequest struct {
	Name          string         `json:"name,omitempty"`
	Description   string         `json:"description,omitempty"`
	Model         string         `json:"model"`
	Instructions  string         `json:"instructions,omitempty"`
	Temperature   float32        `json:"temperature,omitempty"`
	Tools         []tool         `json:"tools,omitempty"`
	ToolResources map[string]any `json:"tool_resources,omitempty"`
}

// EnsureAssistant creates the assistant on the server, or updates the
// existing one when it already has an ID. An ID that no longer exists on the
// server is discarded and the assistant is created anew.
func (e Executor) EnsureAssistant(ctx context.Context, asst *assistant.Assistant) error {
	if asst.ID == "" {
		return e.createAssistant(ctx, asst)
	}

	if err := e.updateAssistant(ctx, asst); err != nil {
		var status *httpclient.StatusError
		if errors.As(err, &status) && status.Code == http.StatusNotFound {
			asst.ID = ""

			return e.createAssistant(ctx, asst)
		}

		return err
	}

	return nil
}

func (e Executor) createAssistant(ctx context.Context, asst *assistant.Assistant) error {
	request, err := e.toAssistantRequest(ctx, asst)
	if err != nil {
		return err
	}

	resp, err := httpclient.Post[identifier](ctx, "/assistants", request, e.clientOptions...)
	if err != nil {
		return fmt.Errorf("create assistant: %w", err)
	}
	asst.ID = resp.ID

	return nil
}

func (e Executor) updateAssistant(ctx context.Context, asst *assistant.Assistant) error {
	request, err := e.toAssistantRequest(ctx, asst)
	if err != nil {
		return err
	}

	if _, err := httpclient.Post[identifier](ctx, "/assistants/"+asst.ID, request, e.clientOptions...); err != nil {
		return fmt.Errorf("update assistant: %w", err)
	}

	return nil
}

func (e Executor) toAssistantRequest(ctx context.Context, asst *assistant.Assistant) (assistantRequest, error) {
	for i, t := range asst.Tools {
		if search, ok := t.(FileSearch); ok {
			if err := e.EnsureFileSearch(ctx, &search); err != nil {
				return assistantRequest{}, err
			}
			asst.Tools[i] = search
		}
	}

	tools, err := toTools(asst.Tools)
	if err != nil {
		return assistantRequest{}, err
	}
	request := assistantRequest{
		Name:          asst.Name,
		Description:   asst.Description,
		Model:         asst.Model,
		Instructions:  asst.Instructions,
		Temperature:   asst.Temperature,
		Tools:         tools,
		ToolResources: toToolResources(asst.Tools),
	}
	if request.Model == "" {
		request.Model = "gpt-4o-mini"
	}

	return request, nil
}

// DeleteAssistant deletes the assistant on the server.
// Deleting an assistant that no longer exists is not an error.
func (e Executor) DeleteAssistant(ctx context.Context, asst *assistant.Assistant) error {
	if asst.ID == "" {
		return nil
	}

	if err := httpclient.Delete(ctx, "/assistants/"+asst.ID, e.clientOptions...); err != nil {
		var status *httpclient.StatusError
		if !errors.As(err, &status) || status.Code != http.StatusNotFound {
			return fmt.Errorf("delete assistant: %w", err)
		}
	}
	asst.ID = ""

	return nil
}
