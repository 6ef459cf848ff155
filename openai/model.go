// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import "github.com/invopop/jsonschema"

// Wire types of the Assistants v2 REST API.
type (
	function struct {
		Name        string             `json:"name"`
		Description string             `json:"description,omitempty"`
		Strict      bool               `json:"strict,omitempty"`
		Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
	}
	tool struct {
		Type     string    `json:"type"`
		Function *function `json:"function,omitempty"`
	}
	attachment struct {
		FileID string `json:"file_id,omitempty"`
		Tools  []tool `json:"tools,omitempty"`
	}
	content struct {
		Type string `json:"type"`
		Text string `json:"text,omitempty"`
	}
	message struct {
		Role        string       `json:"role"`
		Content     []content    `json:"content"`
		Attachments []attachment `json:"attachments,omitempty"`
	}

	identifier struct {
		ID string `json:"id"`
	}

	toolCall struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Function struct {
			Name      string `json:"name"`
			Arguments string `json:"arguments"`
		} `json:"function"`
	}
	runObject struct {
		ID             string `json:"id"`
		ThreadID       string `json:"thread_id"`
		Status         string `json:"status"`
		RequiredAction struct {
			SubmitToolOutputs struct {
				ToolCalls []toolCall `json:"tool_calls"`
			} `json:"submit_tool_outputs"`
		} `json:"required_action"`
		LastError *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"last_error"`
	}

	fileBatch struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		FileCounts struct {
			Completed  int `json:"completed"`
			Failed     int `json:"failed"`
			Cancelled  int `json:"cancelled"`
			InProgress int `json:"in_progress"`
			Total      int `json:"total"`
		} `json:"file_counts"`
	}
)
