// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package embedded provides the marker interfaces that seal the extension
// points of the assistant package.
package embedded

type Tool interface {
	tool()
}

type BuiltInTool interface {
	Tool

	builtInTool()
}

type Content interface {
	content()
}

type Option interface {
	option()
}
