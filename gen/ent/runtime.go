// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/acervo-dev/acervo/db/ent/schema"
	"github.com/acervo-dev/acervo/gen/ent/document"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[1].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescFilePath is the schema descriptor for file_path field.
	documentDescFilePath := documentFields[2].Descriptor()
	// document.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	document.FilePathValidator = documentDescFilePath.Validators[0].(func(string) error)
	// documentDescOriginalContent is the schema descriptor for original_content field.
	documentDescOriginalContent := documentFields[4].Descriptor()
	// document.OriginalContentValidator is a validator for the "original_content" field. It is called by the builders before save.
	document.OriginalContentValidator = documentDescOriginalContent.Validators[0].(func(string) error)
	// documentDescIngestedAt is the schema descriptor for ingested_at field.
	documentDescIngestedAt := documentFields[6].Descriptor()
	// document.DefaultIngestedAt holds the default value on creation for the ingested_at field.
	document.DefaultIngestedAt = documentDescIngestedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
}
