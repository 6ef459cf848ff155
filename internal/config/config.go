// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package config loads lab settings from the environment, an optional .env
// file, and an optional assistant manifest.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the lab commands need to talk to the API
// and find their local files.
type Config struct {
	// APIKey authenticates every API call. Required.
	APIKey string
	// Organization is sent as OpenAI-Organization when set.
	Organization string

	// AssistantFile persists the assistant ID between runs.
	AssistantFile string
	// DocumentPath is the source document ingested into the vector store.
	DocumentPath string
	// NotesOutput is where generated revision notes are written.
	NotesOutput string

	Assistant Manifest
}

// Manifest describes the assistant the init lab creates or updates.
// A yaml manifest file can override any field.
type Manifest struct {
	Name         string  `yaml:"name"`
	Description  string  `yaml:"description"`
	Model        string  `yaml:"model"`
	Instructions string  `yaml:"instructions"`
	Temperature  float32 `yaml:"temperature"`
}

const defaultInstructions = "You are a study assistant. Answer questions using the attached " +
	"course documents, cite the relevant section when possible, and keep answers concise."

// Load reads configuration from the environment, loading a .env file first
// when one exists, then applies the manifest file named by ASSISTANT_MANIFEST
// (default assistant.yaml) when it exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		APIKey:        os.Getenv("OPENAI_API_KEY"),
		Organization:  os.Getenv("OPENAI_ORG"),
		AssistantFile: getEnvOrDefault("ASSISTANT_FILE", ".assistant"),
		DocumentPath:  getEnvOrDefault("LAB_DOCUMENT", "data/topology.pdf"),
		NotesOutput:   getEnvOrDefault("LAB_NOTES_OUTPUT", "data/exam_notes.json"),
		Assistant: Manifest{
			Name:         "Practice Lab Assistant",
			Description:  "Answers questions about the uploaded course documents.",
			Model:        "gpt-4o-mini",
			Instructions: defaultInstructions,
			Temperature:  0.7,
		},
	}
	if err := config.applyManifest(getEnvOrDefault("ASSISTANT_MANIFEST", "assistant.yaml")); err != nil {
		return nil, err
	}

	return config, config.validate()
}

func (c *Config) applyManifest(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("read manifest %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &c.Assistant); err != nil {
		return fmt.Errorf("parse manifest %s: %w", path, err)
	}

	return nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return &Error{Field: "OPENAI_API_KEY", Message: "API key is required, set it in the environment or a .env file"}
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// Error reports a missing or invalid configuration value.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}
