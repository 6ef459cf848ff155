// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package state_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practicelab/assistant/internal/state"
)

func TestAssistantID(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".assistant")

	id, err := state.LoadAssistantID(path)
	require.NoError(t, err)
	assert.Equal(t, "", id)

	require.NoError(t, state.SaveAssistantID(path, "asst_123"))
	id, err = state.LoadAssistantID(path)
	require.NoError(t, err)
	assert.Equal(t, "asst_123", id)

	require.NoError(t, state.Remove(path))
	id, err = state.LoadAssistantID(path)
	require.NoError(t, err)
	assert.Equal(t, "", id)

	// Removing again is fine.
	assert.NoError(t, state.Remove(path))
}
