// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// lab-init creates (or updates) the lab assistant, uploads the source
// document, and wires a vector store for file search. The assistant ID is
// persisted so later labs reuse the same assistant.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/internal/config"
	"github.com/practicelab/assistant/internal/document"
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
	executor := newExecutor(cfg)

	id, err := state.LoadAssistantID(cfg.AssistantFile)
	if err != nil {
		return err
	}

	file, err := document.Open(cfg.DocumentPath)
	if err != nil {
		return err
	}
	defer file.Close()

	asst := &assistant.Assistant{
		ID:           id,
		Name:         cfg.Assistant.Name,
		Description:  cfg.Assistant.Description,
		Model:        cfg.Assistant.Model,
		Instructions: cfg.Assistant.Instructions,
		Temperature:  cfg.Assistant.Temperature,
		Tools: []assistant.Tool{
			openai.FileSearch{
				Store: openai.VectorStore{
					Name: "practice-lab-docs",
					Files: []assistant.File{
						{Name: filepath.Base(cfg.DocumentPath), Reader: file},
					},
				},
			},
		},
		Executor: executor,
	}
	if err := executor.EnsureAssistant(ctx, asst); err != nil {
		return err
	}
	if err := state.SaveAssistantID(cfg.AssistantFile, asst.ID); err != nil {
		return err
	}

	fmt.Println("Assistant ready:", asst.ID)
	if search, ok := asst.Tools[0].(openai.FileSearch); ok && search.Store.ID != "" {
		fmt.Println("Vector store:", search.Store.ID)
		for _, f := range search.Store.Files {
			fmt.Println("Indexed file:", f.Name, "as", f.ID)
		}
	}
	fmt.Println("Saved assistant ID to", cfg.AssistantFile)

	return nil
}

func newExecutor(cfg *config.Config) openai.Executor {
	if cfg.Organization != "" {
		return openai.NewExecutor(openai.WithAPIKey(cfg.APIKey), openai.WithOrganization(cfg.Organization))
	}

	return openai.NewExecutor(openai.WithAPIKey(cfg.APIKey))
}
