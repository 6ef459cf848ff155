// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// lab-search asks the saved assistant a question answered from the indexed
// documents via file search.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/internal/config"
	"github.com/practicelab/assistant/internal/state"
	"github.com/practicelab/assistant/openai"
)

func main() {
	question := flag.String("question", "What network topologies does the document describe?",
		"question to ask about the indexed documents")
	flag.Parse()

	if err := run(context.Background(), *question); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, question string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	id, err := state.LoadAssistantID(cfg.AssistantFile)
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("no saved assistant in %s, run lab-init first", cfg.AssistantFile) //nolint:err113
	}
	asst := &assistant.Assistant{ID: id, Executor: newExecutor(cfg)}

	answer, err := assistant.Run[string, string](ctx, asst, &assistant.Thread{}, question)
	if err != nil {
		return err
	}

	fmt.Println("Q:", question)
	fmt.Println("A:", answer)

	return nil
}

func newExecutor(cfg *config.Config) openai.Executor {
	if cfg.Organization != "" {
		return openai.NewExecutor(openai.WithAPIKey(cfg.APIKey), openai.WithOrganization(cfg.Organization))
	}

	return openai.NewExecutor(openai.WithAPIKey(cfg.APIKey))
}
