// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates user-supplied CUE documents against an embedded
// schema and decodes them into Go values.
//
// Every hostkit file format (configuration, message catalogs) goes through
// the same three steps:
//
//  1. Compile the embedded schema
//  2. Compile the user data and unify it with the schema definition
//  3. Validate and decode into the target type
//
// # Usage
//
//	//go:embed catalog_schema.cue
//	var catalogSchema []byte
//
//	result, err := cueutil.ParseAndDecode[catalogFile](
//	    catalogSchema,
//	    data,
//	    "#Catalog",
//	    cueutil.WithFilename("de.cue"),
//	)
//
// Errors carry the file name and the JSON-style path of the offending
// field, e.g. "de.cue: messages.Hello: conflicting values".
package cueutil
