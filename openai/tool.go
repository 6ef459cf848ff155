// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"fmt"

	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/internal/embedded"
)

// FileSearch augments the Assistant with knowledge from outside its model,
// such as proprietary product information or documents provided by your users.
// The service automatically parses and chunks the documents, creates and stores
// the embeddings, and uses both vector and keyword search to retrieve relevant
// content to answer user queries.
type FileSearch struct {
	embedded.BuiltInTool

	// The vector store attached to this assistant.
	Store VectorStore
}

// VectorStore is a managed index over uploaded documents.
//
// If ID is empty, a store is created on the server and the files are
// ingested into it before the store is used.
type VectorStore struct {
	ID    string
	Name  string
	Files []assistant.File
}

func toTools(tools []assistant.Tool) ([]tool, error) {
	toolsList := make([]tool, 0, len(tools))
	for _, t := range tools {
		switch tol := t.(type) {
		case FileSearch:
			toolsList = append(toolsList, tool{Type: "file_search"})
		default:
			schemaer, ok := t.(interface {
				Schema() (assistant.FunctionSchema, error)
			})
			if !ok {
				return nil, fmt.Errorf("unsupported tool %T", tol) //nolint:err113
			}
			schema, err := schemaer.Schema()
			if err != nil {
				return nil, fmt.Errorf("get function schema: %w", err)
			}
			toolsList = append(toolsList, tool{Type: "function", Function: &function{
				Name:        schema.Name,
				Description: schema.Description,
				Strict:      schema.Strict,
				Parameters:  schema.Parameter,
			}})
		}
	}

	return toolsList, nil
}

func toToolResources(tools []assistant.Tool) map[string]any {
	resources := map[string]any{}
	for _, t := range tools {
		if search, ok := t.(FileSearch); ok && search.Store.ID != "" {
			resources["file_search"] = map[string][]string{"vector_store_ids": {search.Store.ID}}
		}
	}
	if len(resources) == 0 {
		return nil
	}

	return resources
}
