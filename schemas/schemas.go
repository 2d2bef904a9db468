// Package schemas holds the embedded JSON Schemas for intentbench
// configuration files.
package schemas

import _ "embed"

// SuiteSchemaJSON is the JSON Schema for suite YAML files.
//
//go:embed suite.schema.json
var SuiteSchemaJSON string
