// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package state persists the assistant ID between lab runs so labs reuse
// one assistant instead of creating a new one on every invocation.
package state

import (
	"fmt"
	"os"
	"strings"
)

// LoadAssistantID reads a previously saved assistant ID.
// A missing file is not an error and yields an empty ID.
func LoadAssistantID(path string) (string, error) {
	content, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("read assistant file %s: %w", path, err)
	}

	return strings.TrimSpace(string(content)), nil
}

// SaveAssistantID writes the assistant ID for later runs.
func SaveAssistantID(path, id string) error {
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return fmt.Errorf("write assistant file %s: %w", path, err)
	}

	return nil
}

// Remove deletes the saved assistant ID. Removing an absent file is a no-op.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove assistant file %s: %w", path, err)
	}

	return nil
}
