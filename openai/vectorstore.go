// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/practicelab/assistant/internal/httpclient"
)

// CreateVectorStore creates an empty vector store with the given name and
// returns its ID.
func (e Executor) CreateVectorStore(ctx context.Context, name string) (string, error) {
	request := struct {
		Name string `json:"name,omitempty"`
	}{Name: name}

	resp, err := httpclient.Post[identifier](ctx, "/vector_stores", request, e.clientOptions...)
	if err != nil {
		return "", fmt.Errorf("create vector store: %w", err)
	}

	return resp.ID, nil
}

// AddFiles ingests the uploaded files into the vector store and waits for the
// ingestion batch to finish, checking its status once a second.
func (e Executor) AddFiles(ctx context.Context, storeID string, fileIDs []string) error {
	request := struct {
		FileIDs []string `json:"file_ids"`
	}{FileIDs: fileIDs}

	batch, err := httpclient.Post[fileBatch](ctx, "/vector_stores/"+storeID+"/file_batches", request, e.clientOptions...)
	if err != nil {
		return fmt.Errorf("create file batch: %w", err)
	}

	for batch.Status == "in_progress" {
		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		case <-time.After(pollInterval):
		}
		batch, err = httpclient.Get[fileBatch](ctx,
			"/vector_stores/"+storeID+"/file_batches/"+batch.ID, e.clientOptions...)
		if err != nil {
			return fmt.Errorf("retrieve file batch: %w", err)
		}
	}
	if batch.Status != "completed" {
		return fmt.Errorf("file batch %s: %d of %d files failed", //nolint:err113
			batch.Status, batch.FileCounts.Failed, batch.FileCounts.Total)
	}

	return nil
}

// EnsureFileSearch uploads the pending files of the file search tool, creates
// its vector store when needed and ingests the files into it.
func (e Executor) EnsureFileSearch(ctx context.Context, search *FileSearch) error {
	fileIDs := make([]string, 0, len(search.Store.Files))
	for i := range search.Store.Files {
		file := &search.Store.Files[i]
		if file.ID == "" && file.Reader != nil {
			if err := e.UploadFile(ctx, file); err != nil {
				return err
			}
		}
		if file.ID != "" {
			fileIDs = append(fileIDs, file.ID)
		}
	}

	if search.Store.ID == "" {
		if len(fileIDs) == 0 {
			return nil
		}
		id, err := e.CreateVectorStore(ctx, search.Store.Name)
		if err != nil {
			return err
		}
		search.Store.ID = id
	}
	if len(fileIDs) == 0 {
		return nil
	}

	return e.AddFiles(ctx, search.Store.ID, fileIDs)
}
