// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/practicelab/assistant/internal/embedded"
	"github.com/practicelab/assistant/internal/schema"
)

type Tool interface {
	embedded.Tool
}

// Function calling allows you to describe functions to the remote service
// and have the model intelligently return the functions that need to be
// called along with their arguments.
type Function[A, R any] struct {
	embedded.Tool

	// The name of the function to be called.
	// Must be a-z, A-Z, 0-9, or contain underscores and dashes, with a maximum length of 64.
	Name string
	// A description of what the function does, used by the model to choose when and how to call the function.
	Description string
	// Strict requests exact schema compliance for the generated arguments.
	Strict bool
	// The real function attached to the tool.
	Function func(ctx context.Context, argument A) (R, error)
}

// FunctionSchema is the declaration of a function tool sent to the server.
type FunctionSchema struct {
	Name        string
	Description string
	Strict      bool
	Parameter   *jsonschema.Schema
}

func (f Function[A, R]) Schema() (FunctionSchema, error) {
	parameter, err := schema.For[A]()
	if err != nil {
		return FunctionSchema{}, fmt.Errorf("generate function schema: %w", err)
	}

	return FunctionSchema{
		Name:        f.Name,
		Description: f.Description,
		Strict:      f.Strict,
		Parameter:   parameter,
	}, nil
}

func (f Function[A, R]) ID() string {
	return f.Name
}

// Call decodes the arguments generated by the model, invokes the attached
// function and wraps its result into a message.
func (f Function[A, R]) Call(ctx context.Context, argument string) (Message, error) {
	var a A
	if err := json.Unmarshal([]byte(argument), &a); err != nil {
		return Message{}, fmt.Errorf("unmarshal function call arguments: %w", err)
	}
	r, err := f.Function(ctx, a)
	if err != nil {
		return Message{}, fmt.Errorf("call function: %w", err)
	}

	return toMessage(r)
}
