// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides the CUE compile, unify, and validate flow shared by
// configuration loading and its tests.
//
// A schema embedded in the binary is compiled once, the user's file is
// compiled next to it, the two are unified under a root definition, and the
// result is validated. Errors carry the offending file and a JSON-style path
// to the field that failed:
//
//	config.cue: watch.debounce: conflicting values "fast" and string & =~"^[0-9]+(ms|s)$"
//
// # Usage
//
//	//go:embed config_schema.cue
//	var schema string
//
//	v, err := cueutil.Unify(schema, data, "#Config", cueutil.WithFilename(path))
//	if err != nil {
//	    return err
//	}
//	var m map[string]any
//	err = v.Decode(&m)
package cueutil
