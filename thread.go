// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package assistant

// Thread is a conversation session between an Assistant and a user.
// Threads store Messages and automatically handle truncation to fit content into a model's context.
// Due to [Thread Locks], the same thread could not be ran by multiple goroutines simultaneously.
//
// If ID is empty, a new thread will be created on the server with the given
// messages. Otherwise, the thread with the given ID will be used and new
// messages are appended to it.
//
// [Thread Locks]: https://platform.openai.com/docs/assistants/how-it-works/thread-locks
type Thread struct {
	ID       string
	Messages []Message
	Tools    []Tool
}

// AppendText appends a user message with the given text(s) to the thread.
func (t *Thread) AppendText(texts ...string) {
	message := Message{Role: RoleUser}
	for _, text := range texts {
		message.Content = append(message.Content, Text{Text: text})
	}
	t.Messages = append(t.Messages, message)
}
