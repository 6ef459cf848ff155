// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"bytes"
	"context"
	"fmt"

	"github.com/practicelab/assistant"
	"github.com/practicelab/assistant/internal/httpclient"
)

// UploadFile uploads the file content to the [files] storage with the
// assistants purpose and fills in the assigned file ID.
//
// [files]: https://platform.openai.com/docs/api-reference/files
func (e Executor) UploadFile(ctx context.Context, file *assistant.File) error {
	resp, err := httpclient.Upload[identifier](ctx, "/files", file.Name, file.Reader,
		map[string]string{"purpose": "assistants"}, e.clientOptions...)
	if err != nil {
		return fmt.Errorf("upload file: %w", err)
	}
	file.ID = resp.ID

	return nil
}

// DownloadFile retrieves the content of a generated file.
func (e Executor) DownloadFile(ctx context.Context, file *assistant.File) error {
	content, err := httpclient.Get[[]byte](ctx, "/files/"+file.ID+"/content", e.clientOptions...)
	if err != nil {
		return fmt.Errorf("download file: %w", err)
	}
	file.Reader = bytes.NewReader(content)

	return nil
}

// ensureFiles uploads every attached file that has content but no ID yet.
func (e Executor) ensureFiles(ctx context.Context, messages []assistant.Message) error {
	for i := range messages {
		for j, c := range messages[i].Content {
			att, ok := c.(assistant.Attachment)
			if !ok || att.File.ID != "" || att.File.Reader == nil {
				continue
			}
			if err := e.UploadFile(ctx, &att.File); err != nil {
				return err
			}
			messages[i].Content[j] = att
		}
	}

	return nil
}
