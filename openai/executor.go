// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package openai executes assistants, threads and runs against the
// [OpenAI Assistants v2 REST API].
//
// [OpenAI Assistants v2 REST API]: https://platform.openai.com/docs/api-reference/assistants
package openai

import (
	"context"
	"os"

	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/internal/httpclient"
)

var _ assistant.Executor = (*Executor)(nil)

type Executor struct {
	clientOptions []httpclient.Option
}

// NewExecutor creates an Executor for the OpenAI API.
//
// By default the API key is read from the OPENAI_API_KEY environment
// variable; use WithAPIKey, WithOrganization, WithBaseURL or WithHTTPClient
// to override the defaults.
func NewExecutor(opts ...httpclient.Option) Executor {
	return Executor{clientOptions: append([]httpclient.Option{
		httpclient.WithBaseURL("https://api.openai.com/v1"),
		httpclient.WithHeader("Authorization", "Bearer "+os.Getenv("OPENAI_API_KEY")),
		httpclient.WithHeader("OpenAI-Beta", "assistants=v2"),
	}, opts...)}
}

// WithAPIKey overrides the API key read from OPENAI_API_KEY.
func WithAPIKey(key string) httpclient.Option {
	return httpclient.WithHeader("Authorization", "Bearer "+key)
}

// WithOrganization sets the organization charged for API usage.
func WithOrganization(organization string) httpclient.Option {
	return httpclient.WithHeader("OpenAI-Organization", organization)
}

//nolint:gochecknoglobals
var (
	WithBaseURL    = httpclient.WithBaseURL
	WithHTTPClient = httpclient.WithHTTPClient
)

func (e Executor) Run(
	ctx context.Context,
	asst *assistant.Assistant,
	thread *assistant.Thread,
	messages []assistant.Message,
	opts []assistant.Option,
) error {
	if asst.ID == "" {
		if err := e.createAssistant(ctx, asst); err != nil {
			return err
		}
	}

	if err := e.ensureFiles(ctx, messages); err != nil {
		return err
	}
	if thread.ID == "" {
		thread.Messages = append(thread.Messages, messages...)
		if err := e.createThread(ctx, thread); err != nil {
			return err
		}
	} else {
		for i := range messages {
			if err := e.createMessage(ctx, thread.ID, &messages[i]); err != nil {
				return err
			}
			thread.Messages = append(thread.Messages, messages[i])
		}
	}

	return e.run(ctx, asst, thread, opts)
}

func (e Executor) ShutdownAssistant(ctx context.Context, asst *assistant.Assistant) error {
	return e.DeleteAssistant(ctx, asst)
}
