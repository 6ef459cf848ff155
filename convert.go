// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package assistant

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// StripCodeFence removes a surrounding markdown code fence, with or without a
// json language tag, from the given text. Models in JSON mode occasionally
// wrap their response in a fence even when asked for bare JSON.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}

// fromMessage converts the text of a message into R. A string receives the
// raw text; any other type is decoded from the text as JSON after stripping
// an optional code fence.
func fromMessage[R any](message Message) (R, error) { //nolint:ireturn
	var result R

	text, found := "", false
	for _, content := range message.Content {
		if t, ok := content.(Text); ok {
			text, found = t.Text, true

			break
		}
	}
	if !found {
		return result, errors.New("message has no text content") //nolint:err113
	}

	if r, ok := any(text).(R); ok {
		return r, nil
	}
	if err := json.Unmarshal([]byte(StripCodeFence(text)), &result); err != nil {
		return result, fmt.Errorf("unmarshal message into %T: %w", result, err)
	}

	return result, nil
}

// toMessage converts a function result into an assistant message.
func toMessage(result any) (Message, error) {
	switch value := result.(type) {
	case Message:
		return value, nil
	case string:
		return Message{Role: RoleAssistant, Content: []Content{Text{Text: value}}}, nil
	default:
		encoded, err := json.Marshal(result)
		if err != nil {
			return Message{}, fmt.Errorf("marshal %T into message: %w", result, err)
		}

		return Message{Role: RoleAssistant, Content: []Content{Text{Text: string(encoded)}}}, nil
	}
}
