// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// lab-structured compares the two structured-output approaches the API
// offers: JSON mode, which only promises syntactically valid JSON, and
// strict function tools, which enforce the declared argument schema. It
// finishes by generating a validated set of revision notes through a
// function tool and writing them to disk.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/internal/config"
	"github.com/practicelab/assistant/internal/document"
	"github.com/practicelab/assistant/internal/state"
	"github.com/practicelab/assistant/openai"
	"github.com/practicelab/assistant/records"
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
		return fmt.Errorf("no saved assistant in %s, run lab-init first", cfg.AssistantFile) //nolint:err113
	}
	asst := &assistant.Assistant{ID: id, Executor: newExecutor(cfg)}

	if err := jsonModeDemo(ctx, asst); err != nil {
		return err
	}
	if err := strictToolDemo(ctx, asst); err != nil {
		return err
	}
	if err := generateNotes(ctx, asst, cfg); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("JSON mode guarantees well-formed JSON only; field names and required")
	fmt.Println("fields must be validated locally. Strict function tools enforce the")
	fmt.Println("declared argument schema remotely, so arguments decode directly into")
	fmt.Println("the target record.")

	return nil
}

// jsonModeDemo requests a weather alert in JSON mode. The response format
// only guarantees parseable JSON, so the record is validated locally.
func jsonModeDemo(ctx context.Context, asst *assistant.Assistant) error {
	fmt.Println("--- JSON mode ---")

	raw, err := assistant.Run[string, string](ctx, asst, &assistant.Thread{},
		"Produce a weather alert for a hurricane approaching Miami, FL as a JSON object "+
			"with fields location, severity, alert_type, description, advice and optional expires_at.",
		openai.WithJSONResponse(),
	)
	if err != nil {
		return err
	}
	fmt.Println("Raw response:", raw)

	alert, err := records.ParseWeatherAlert(raw)
	if err != nil {
		return err
	}
	if err := alert.Validate(); err != nil {
		fmt.Println("Alert failed local validation:", err)

		return nil
	}
	fmt.Printf("%s alert for %s: %s\n", alert.Severity, alert.Location, alert.Description)
	fmt.Println("Advice:", alert.Advice)

	return nil
}

// strictToolDemo requests a technical analysis through a strict function
// tool. The schema is enforced remotely, so the arguments arrive already
// shaped as a TechAnalysis.
func strictToolDemo(ctx context.Context, asst *assistant.Assistant) error {
	fmt.Println("--- Strict function tool ---")

	var analysis records.TechAnalysis
	recorded := false
	analyze := assistant.Function[records.TechAnalysis, string]{
		Name:        "analyze_tech_concept",
		Description: "Records a structured analysis of a programming concept.",
		Strict:      true,
		Function: func(_ context.Context, a records.TechAnalysis) (string, error) {
			if err := a.Validate(); err != nil {
				return "", err
			}
			analysis = a
			recorded = true

			return "analysis recorded", nil
		},
	}

	_, err := assistant.Run[string, string](ctx, asst, &assistant.Thread{},
		"Analyze the concept of goroutines in Go using the analyze_tech_concept tool.",
		assistant.WithTool(analyze),
	)
	if err != nil {
		return err
	}
	// A tool error does not fail the run, and the model may answer in prose
	// without ever calling the tool.
	if !recorded {
		return errors.New("the model did not produce a valid analysis") //nolint:err113
	}

	fmt.Printf("%s (%s)\n", analysis.Concept, analysis.DifficultyLevel)
	for _, benefit := range analysis.KeyBenefits {
		fmt.Println("  +", benefit)
	}
	for _, pitfall := range analysis.CommonPitfalls {
		fmt.Println("  -", pitfall)
	}

	return nil
}

// generateNotes asks the assistant to distill the source document into
// exactly ten revision notes delivered through a function tool, then writes
// the validated set to disk.
func generateNotes(ctx context.Context, asst *assistant.Assistant, cfg *config.Config) error {
	fmt.Println("--- Revision notes ---")

	file, err := document.Open(cfg.DocumentPath)
	if err != nil {
		return err
	}
	defer file.Close()

	var notes records.ExamNotes
	// Not strict: page_ref is optional, and strict mode requires every
	// property at every level. Local validation covers the cardinality.
	save := assistant.Function[records.ExamNotes, string]{
		Name:        "save_exam_notes",
		Description: "Saves the generated set of revision notes.",
		Function: func(_ context.Context, n records.ExamNotes) (string, error) {
			if err := n.Validate(); err != nil {
				return "", err
			}
			notes = n

			return fmt.Sprintf("saved %d notes", len(n.Notes)), nil
		},
	}

	message := assistant.TextMessage(
		"Read the attached document and produce exactly 10 revision notes covering its " +
			"key points, numbered 1 through 10, each with a short heading and a summary of " +
			"at most 150 characters. Save them with the save_exam_notes tool.")
	message.Content = append(message.Content, assistant.Attachment{
		File: assistant.File{Name: filepath.Base(cfg.DocumentPath), Reader: file},
		For:  []assistant.Tool{openai.FileSearch{}},
	})

	_, err = assistant.Run[assistant.Message, string](ctx, asst, &assistant.Thread{},
		message, assistant.WithTool(save))
	if err != nil {
		return err
	}
	if err := notes.Validate(); err != nil {
		return fmt.Errorf("generated notes are invalid: %w", err)
	}

	content, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if dir := filepath.Dir(cfg.NotesOutput); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(cfg.NotesOutput, content, 0o600); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	fmt.Println("Wrote", len(notes.Notes), "notes to", cfg.NotesOutput)

	return nil
}

func newExecutor(cfg *config.Config) openai.Executor {
	if cfg.Organization != "" {
		return openai.NewExecutor(openai.WithAPIKey(cfg.APIKey), openai.WithOrganization(cfg.Organization))
	}

	return openai.NewExecutor(openai.WithAPIKey(cfg.APIKey))
}
