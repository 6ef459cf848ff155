// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package assistant

import (
	"github.com/practicelab/assistant/internal/embedded"
)

type (
	// Option configures a single run. Options shaping the request itself
	// (model, instructions, temperature, response format) are provided by the
	// executor implementation.
	Option interface {
		embedded.Option
	}

	// ToolOption declares additional tools for a single run, on top of the
	// tools configured on the assistant.
	ToolOption struct {
		embedded.Option

		Tools []Tool
	}
)

// WithTool declares the given tools for a single run.
func WithTool(tools ...Tool) Option { //nolint:ireturn
	return ToolOption{Tools: tools}
}
