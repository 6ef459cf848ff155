// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/internal/httpclient"
)

func (e Executor) createThread(ctx context.Context, thread *assistant.Thread) error {
	request := struct {
		Messages      []message      `json:"messages,omitempty"`
		ToolResources map[string]any `json:"tool_resources,omitempty"`
	}{
		Messages:      make([]message, 0, len(thread.Messages)),
		ToolResources: toToolResources(thread.Tools),
	}
	for _, msg := range thread.Messages {
		request.Messages = append(request.Messages, toMessage(msg))
	}

	resp, err := httpclient.Post[identifier](ctx, "/threads", request, e.clientOptions...)
	if err != nil {
		return fmt.Errorf("create thread: %w", err)
	}
	thread.ID = resp.ID

	return nil
}

func (e Executor) createMessage(ctx context.Context, threadID string, msg *assistant.Message) error {
	resp, err := httpclient.Post[identifier](ctx, "/threads/"+threadID+"/messages", toMessage(*msg), e.clientOptions...)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	msg.ID = resp.ID

	return nil
}

// latestMessage retrieves the newest message of the thread.
func (e Executor) latestMessage(ctx context.Context, threadID string) (assistant.Message, error) {
	type messageList struct {
		Data []struct {
			ID      string `json:"id"`
			Role    string `json:"role"`
			Content []struct {
				Type string `json:"type"`
				Text struct {
					Value string `json:"value"`
				} `json:"text"`
			} `json:"content"`
		} `json:"data"`
	}

	resp, err := httpclient.Get[messageList](ctx, "/threads/"+threadID+"/messages?limit=1&order=desc", e.clientOptions...)
	if err != nil {
		return assistant.Message{}, fmt.Errorf("list messages: %w", err)
	}
	if len(resp.Data) == 0 {
		return assistant.Message{}, errors.New("thread has no messages") //nolint:err113
	}

	latest := resp.Data[0]
	msg := assistant.Message{
		ID:   latest.ID,
		Role: assistant.Role(latest.Role),
	}
	for _, c := range latest.Content {
		if c.Type == "text" {
			msg.Content = append(msg.Content, assistant.Text{Text: c.Text.Value})
		}
	}

	return msg, nil
}

func toMessage(m assistant.Message) message {
	msg := message{
		Role: string(m.Role),
	}
	for _, c := range m.Content {
		switch cont := c.(type) {
		case assistant.Text:
			msg.Content = append(msg.Content, content{Type: "text", Text: cont.Text})
		case assistant.Attachment:
			tools := make([]tool, 0, len(cont.For))
			for _, t := range cont.For {
				if _, ok := t.(FileSearch); ok {
					tools = append(tools, tool{Type: "file_search"})
				}
			}
			msg.Attachments = append(msg.Attachments, attachment{FileID: cont.File.ID, Tools: tools})
		}
	}

	return msg
}
