// Package schemas holds the embedded JSON Schemas for pipeline documents.
package schemas

import _ "embed"

// PipelineV1Schema is the JSON Schema for pipeline.yaml v1.
//
//go:embed pipeline.schema.json
var PipelineV1Schema []byte
