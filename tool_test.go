// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package assistant_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practicelab/assistant"
)

type cityQuery struct {
	City string `json:"city" jsonschema:"description=Name of the city"`
	Unit string `json:"unit,omitempty" jsonschema:"enum=celsius,enum=fahrenheit"`
}

func TestFunction_Schema(t *testing.T) {
	t.Parallel()

	function := assistant.Function[cityQuery, string]{
		Name:        "get_weather",
		Description: "Returns the current weather for a city.",
		Strict:      true,
	}

	functionSchema, err := function.Schema()
	require.NoError(t, err)
	assert.Equal(t, "get_weather", functionSchema.Name)
	assert.True(t, functionSchema.Strict)

	encoded, err := json.Marshal(functionSchema.Parameter)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"city": {"type": "string", "description": "Name of the city"},
			"unit": {"type": "string", "enum": ["celsius", "fahrenheit"]}
		},
		"required": ["city"],
		"additionalProperties": false
	}`, string(encoded))
}

func TestFunction_Call(t *testing.T) {
	t.Parallel()

	function := assistant.Function[cityQuery, string]{
		Name: "get_weather",
		Function: func(_ context.Context, query cityQuery) (string, error) {
			if query.City == "" {
				return "", errors.New("city is required")
			}

			return "sunny in " + query.City, nil
		},
	}

	message, err := function.Call(context.Background(), `{"city": "Lisbon"}`)
	require.NoError(t, err)
	require.Equal(t, 1, len(message.Content))
	text, ok := message.Content[0].(assistant.Text)
	require.True(t, ok)
	assert.Equal(t, "sunny in Lisbon", text.Text)
	assert.Equal(t, assistant.RoleAssistant, message.Role)

	_, err = function.Call(context.Background(), `{"city": ""}`)
	assert.EqualError(t, err, "call function: city is required")

	_, err = function.Call(context.Background(), `not json`)
	assert.EqualError(t, err,
		"unmarshal function call arguments: invalid character 'o' in literal null (expecting 'u')")
}
