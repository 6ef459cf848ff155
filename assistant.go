// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package assistant provides the domain types for driving a hosted
// assistant service: assistants, conversation threads, messages and
// caller-declared function tools.
package assistant

import (
	"context"
	"fmt"
)

// Assistant is a purpose-built AI that uses models and calls tools.
//
// If ID is empty, a new assistant will be created on the server with the
// given information. Otherwise, the assistant with the given ID will be used
// and the other fields are ignored for runs; they are only consulted when the
// assistant is created or updated.
//
// It's suggested to persist the assistant ID locally and reuse it across
// invocations, so every lab run shares the same remote configuration.
type Assistant struct {
	ID           string
	Name         string
	Description  string
	Model        string
	Instructions string
	Temperature  float32
	Tools        []Tool

	// It provides a different Executor than the default one set by SetDefaultExecutor.
	Executor Executor
	// It provides default options for all runs by this Assistant,
	// and can be overridden by options passed to Run.
	Options []Option
}

// Run runs the given thread with the given message(s) on the given assistant.
// It returns the result according to the last message returned by the
// assistant: a string result receives the raw text, a struct result is
// decoded from the text as JSON after stripping an optional markdown fence.
//
// The assistant and the thread are both created on the server if they do not
// exist yet, and can be reused for following runs.
func Run[M string | Message | []Message, R any]( //nolint:ireturn
	ctx context.Context,
	asst *Assistant,
	thread *Thread,
	message M,
	opts ...Option,
) (R, error) {
	var messages []Message
	switch msg := any(message).(type) {
	case string:
		messages = []Message{TextMessage(msg)}
	case Message:
		messages = []Message{msg}
	case []Message:
		messages = msg
	}

	if err := asst.executor().Run(ctx, asst, thread, messages, opts); err != nil {
		return *new(R), fmt.Errorf("run thread with executor: %w", err)
	}

	return fromMessage[R](thread.Messages[len(thread.Messages)-1])
}

// Shutdown deletes the assistant on the server.
func (a *Assistant) Shutdown(ctx context.Context) error {
	if err := a.executor().ShutdownAssistant(ctx, a); err != nil {
		return fmt.Errorf("shutdown assistant with executor: %w", err)
	}

	return nil
}

func (a *Assistant) executor() Executor { //nolint:ireturn
	if a.Executor != nil {
		return a.Executor
	}

	return *defaultExecutor.Load()
}
