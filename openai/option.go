// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//nolint:ireturn
package openai

import (
	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/internal/embedded"
)

// WithModel overrides the assistant's model for a single run.
func WithModel(model string) assistant.Option {
	return funcOption{
		fn: func(r *runRequest) {
			r.Model = model
		},
	}
}

// WithInstructions overrides the assistant's instructions for a single run.
func WithInstructions(instructions string) assistant.Option {
	return funcOption{
		fn: func(r *runRequest) {
			r.Instructions = instructions
		},
	}
}

// WithAdditionalInstructions appends instructions for a single run without
// overriding the assistant's own.
func WithAdditionalInstructions(instructions string) assistant.Option {
	return funcOption{
		fn: func(r *runRequest) {
			r.AdditionalInstructions = instructions
		},
	}
}

// WithTemperature overrides the sampling temperature for a single run.
func WithTemperature(temperature float32) assistant.Option {
	return funcOption{
		fn: func(r *runRequest) {
			r.Temperature = &temperature
		},
	}
}

// WithJSONResponse asks the model to emit valid JSON instead of free text.
// Unlike a strict function tool, no particular schema is enforced.
func WithJSONResponse() assistant.Option {
	return funcOption{
		fn: func(r *runRequest) {
			r.ResponseFormat = map[string]string{"type": "json_object"}
		},
	}
}

type funcOption struct {
	embedded.Option

	fn func(*runRequest)
}

func (f funcOption) Apply(r *runRequest) {
	f.fn(r)
}
