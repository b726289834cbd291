// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultMaxFileSize bounds the size of user CUE files.
const DefaultMaxFileSize int64 = 5 * 1024 * 1024

type (
	// Option configures Unify.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
		concrete    bool
	}
)

// WithFilename names the user file in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(n int64) Option {
	return func(o *options) { o.maxFileSize = n }
}

// WithConcrete requires every field of the unified value to be concrete.
func WithConcrete() Option {
	return func(o *options) { o.concrete = true }
}

func apply(opts []Option) options {
	o := options{filename: "<input>", maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Unify compiles schema and data, unifies data with the definition at
// schemaPath and validates the result.
func Unify(schema string, data []byte, schemaPath string, opts ...Option) (cue.Value, error) {
	o := apply(opts)

	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return cue.Value{}, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if err := schemaValue.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", err)
	}

	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if err := root.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, err)
	}

	userValue := ctx.CompileBytes(data, cue.Filename(o.filename))
	if err := userValue.Err(); err != nil {
		return cue.Value{}, FormatError(err, o.filename)
	}

	unified := root.Unify(userValue)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return cue.Value{}, FormatError(err, o.filename)
	}

	return unified, nil
}

// Decode runs Unify and decodes the result into T.
func Decode[T any](schema string, data []byte, schemaPath string, opts ...Option) (*T, error) {
	v, err := Unify(schema, data, schemaPath, opts...)
	if err != nil {
		return nil, err
	}

	var out T
	if err := v.Decode(&out); err != nil {
		return nil, FormatError(err, apply(opts).filename)
	}
	return &out, nil
}
