// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package schema generates JSON schemas for function tool parameters,
// restricted to the [supported subset] of the remote service: definitions are
// inlined, objects never allow additional properties, and the $schema marker
// is omitted.
//
// [supported subset]: https://platform.openai.com/docs/guides/structured-outputs/supported-schemas
package schema

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// For generates the JSON schema for the type T using reflection.
//
// Field names follow the json tags, fields are required unless tagged with
// omitempty, and descriptions, enums and bounds are read from jsonschema
// struct tags. T must be a struct since the service only accepts object
// schemas as function parameters.
func For[T any]() (*jsonschema.Schema, error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("function parameters must be a struct, not %s", typ) //nolint:err113
	}

	reflector := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	generated := reflector.ReflectFromType(typ)
	// The $schema marker is not part of the supported subset.
	generated.Version = ""

	return generated, nil
}
