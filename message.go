// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package assistant

import (
	"io"

	"github.com/practicelab/assistant/internal/embedded"
)

type (
	// Role is the author of a message.
	Role string

	// Message is a single message within a thread.
	Message struct {
		ID      string
		Role    Role
		Content []Content
	}

	// Content is a part of a message.
	Content interface {
		embedded.Content
	}

	// Text content that is part of a message.
	Text struct {
		embedded.Content

		Text string
	}

	// Attachment attaches a file to a message and makes it available to the
	// given built-in tools, e.g. file search.
	Attachment struct {
		embedded.Content

		File File
		For  []Tool
	}

	// File is a document in the remote files storage.
	//
	// If ID is empty, the file is uploaded from Reader before it is used.
	File struct {
		ID     string
		Name   string
		Reader io.Reader
	}
)

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// TextMessage returns a user message with a single text content.
func TextMessage(text string) Message {
	return Message{Role: RoleUser, Content: []Content{Text{Text: text}}}
}
