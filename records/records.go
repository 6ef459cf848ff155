// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package records holds the structured response records the labs request
// from the assistant, together with their local validation. Validation only
// runs on what the model actually returned; nothing here can force the
// remote model to comply with a requested schema.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/practicelab/assistant"
)

// NoteCount is the number of revision notes a note set must contain.
const NoteCount = 10

// maxSummaryLength bounds a note summary, in characters.
const maxSummaryLength = 150

// Note is a single revision note generated from the source document.
type Note struct {
	ID      int    `json:"id" jsonschema:"minimum=1,maximum=10"`
	Heading string `json:"heading"`
	Summary string `json:"summary" jsonschema:"maxLength=150"`
	// PageRef stays zero when the model could not attribute the note to a page.
	PageRef int `json:"page_ref,omitempty" jsonschema:"description=Page number in the source document"`
}

func (n Note) Validate() error {
	if n.ID < 1 || n.ID > NoteCount {
		return fmt.Errorf("note id %d is out of range 1..%d", n.ID, NoteCount) //nolint:err113
	}
	if n.Heading == "" {
		return fmt.Errorf("note %d has no heading", n.ID) //nolint:err113
	}
	if length := utf8.RuneCountInString(n.Summary); length > maxSummaryLength {
		return fmt.Errorf("note %d summary is %d characters, at most %d allowed", //nolint:err113
			n.ID, length, maxSummaryLength)
	}

	return nil
}

// ExamNotes is the container for a full set of revision notes.
type ExamNotes struct {
	Notes []Note `json:"notes"`
}

// Validate checks that the set holds exactly NoteCount valid notes.
func (e ExamNotes) Validate() error {
	if len(e.Notes) != NoteCount {
		return fmt.Errorf("expected exactly %d notes, got %d", NoteCount, len(e.Notes)) //nolint:err113
	}
	for _, note := range e.Notes {
		if err := note.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// WeatherAlert is the loosely structured record requested in JSON mode.
// All fields are free text with no cross-field invariants.
type WeatherAlert struct {
	Location    string `json:"location" jsonschema:"description=Geographic location of the alert"`
	Severity    string `json:"severity" jsonschema:"description=Alert severity such as low or critical"`
	AlertType   string `json:"alert_type" jsonschema:"description=Type of weather alert"`
	Description string `json:"description" jsonschema:"description=Detailed description of the weather condition"`
	Advice      string `json:"advice" jsonschema:"description=Recommended actions for safety"`
	ExpiresAt   string `json:"expires_at,omitempty" jsonschema:"description=When the alert expires if known"`
}

// Validate checks that every required field is present. JSON mode does not
// enforce the schema remotely, so missing fields are common.
func (a WeatherAlert) Validate() error {
	for field, value := range map[string]string{
		"location":    a.Location,
		"severity":    a.Severity,
		"alert_type":  a.AlertType,
		"description": a.Description,
		"advice":      a.Advice,
	} {
		if value == "" {
			return fmt.Errorf("weather alert is missing %s", field) //nolint:err113
		}
	}

	return nil
}

// DifficultyLevels are the only accepted difficulty labels of a TechAnalysis.
//
//nolint:gochecknoglobals
var DifficultyLevels = []string{"Beginner", "Intermediate", "Advanced"}

// TechAnalysis is the strictly structured analysis of a technical concept.
type TechAnalysis struct {
	Concept           string   `json:"concept" jsonschema:"description=The programming concept being analyzed"`
	DifficultyLevel   string   `json:"difficulty_level" jsonschema:"enum=Beginner,enum=Intermediate,enum=Advanced"`
	KeyBenefits       []string `json:"key_benefits" jsonschema:"description=Main advantages of this concept"`
	CommonPitfalls    []string `json:"common_pitfalls" jsonschema:"description=Common mistakes to avoid"`
	UseCases          []string `json:"use_cases" jsonschema:"description=Practical applications"`
	LearningResources []string `json:"learning_resources" jsonschema:"description=Recommended learning materials"`
}

func (t TechAnalysis) Validate() error {
	if t.Concept == "" {
		return errors.New("analysis has no concept") //nolint:err113
	}
	for _, level := range DifficultyLevels {
		if t.DifficultyLevel == level {
			return nil
		}
	}

	return fmt.Errorf("difficulty level %q is not one of %v", t.DifficultyLevel, DifficultyLevels) //nolint:err113
}

// ParseWeatherAlert decodes a weather alert from raw model output,
// stripping an optional markdown code fence first.
func ParseWeatherAlert(raw string) (WeatherAlert, error) {
	var alert WeatherAlert
	if err := json.Unmarshal([]byte(assistant.StripCodeFence(raw)), &alert); err != nil {
		return WeatherAlert{}, fmt.Errorf("decode weather alert: %w", err)
	}

	return alert, nil
}

// ParseExamNotes decodes a note set from raw model output,
// stripping an optional markdown code fence first.
func ParseExamNotes(raw string) (ExamNotes, error) {
	var notes ExamNotes
	if err := json.Unmarshal([]byte(assistant.StripCodeFence(raw)), &notes); err != nil {
		return ExamNotes{}, fmt.Errorf("decode exam notes: %w", err)
	}

	return notes, nil
}
