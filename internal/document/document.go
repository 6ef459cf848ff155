// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package document resolves the lab's source document on disk.
package document

import (
	"fmt"
	"os"
	"path/filepath"
)

const placeholder = "Network Topologies\n\n" +
	"A network topology describes how nodes in a network are arranged and connected.\n" +
	"Common topologies include bus, ring, star, mesh, and tree. Star topologies\n" +
	"connect every node to a central switch, which simplifies management but makes\n" +
	"the switch a single point of failure. Mesh topologies connect nodes to many\n" +
	"peers, trading cabling cost for redundancy.\n"

// Open opens the source document for upload. When the document does not
// exist, a small placeholder text file is written in its place so the labs
// can run end to end without any local course material.
func Open(path string) (*os.File, error) {
	file, err := os.Open(path)
	switch {
	case err == nil:
		return file, nil
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create document directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(placeholder), 0o600); err != nil {
		return nil, fmt.Errorf("write placeholder document %s: %w", path, err)
	}
	file, err = os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}

	return file, nil
}
