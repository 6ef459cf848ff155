// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// lab-cleanup deletes the saved assistant on the server and removes the
// local assistant file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/internal/config"
	"github.com/practicelab/assistant/internal/state"
	"github.com/practicelab/assistant/openai"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	id, err := state.LoadAssistantID(cfg.AssistantFile)
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Println("No saved assistant, nothing to clean up.")

		return nil
	}

	asst := &assistant.Assistant{ID: id, Executor: newExecutor(cfg)}
	if err := asst.Shutdown(ctx); err != nil {
		return err
	}
	if err := state.Remove(cfg.AssistantFile); err != nil {
		return err
	}

	fmt.Println("Deleted assistant", id, "and removed", cfg.AssistantFile)

	return nil
}

func newExecutor(cfg *config.Config) openai.Executor {
	if cfg.Organization != "" {
		return openai.NewExecutor(openai.WithAPIKey(cfg.APIKey), openai.WithOrganization(cfg.Organization))
	}

	return openai.NewExecutor(openai.WithAPIKey(cfg.APIKey))
}
