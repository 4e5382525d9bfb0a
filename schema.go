// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

package msgdoc

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// messageSchemaURL is the resource location of the embedded message schema.
const messageSchemaURL = "https://github.com/woozymasta/msgdoc/schema/message.schema.json"

// messageSchema stores the message description JSON Schema embedded into the package.
//
//go:embed schema/message.schema.json
var messageSchema []byte

// Validator checks message description documents against the message schema.
// It is immutable after construction and safe for concurrent use.
type Validator struct {
	schema *jsonschema.Schema
}

// MessageSchema returns a copy of the embedded message description JSON Schema.
func MessageSchema() []byte {
	return bytes.Clone(messageSchema)
}

// NewValidator compiles the embedded message schema.
func NewValidator() (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(messageSchema))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileSchema, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(messageSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileSchema, err)
	}

	schema, err := compiler.Compile(messageSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileSchema, err)
	}

	return &Validator{schema: schema}, nil
}

// Validate decodes data and checks it against the message schema.
func (v *Validator) Validate(data []byte) error {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeMessage, err)
	}

	err = v.schema.Validate(instance)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("%w: %w", ErrValidateMessage, err)
	}

	return fmt.Errorf("%w: %s", ErrValidateMessage, describeValidationError(validationErr))
}

// describeValidationError flattens validation error tree into one line of leaf messages.
func describeValidationError(validationErr *jsonschema.ValidationError) string {
	leaves := make([]string, 0, 4)
	collectValidationLeaves(validationErr, message.NewPrinter(language.English), &leaves)
	if len(leaves) == 0 {
		return sanitizeText(validationErr.Error())
	}

	return strings.Join(leaves, "; ")
}

// collectValidationLeaves walks causes depth-first and renders leaves as "at <pointer>: <message>".
func collectValidationLeaves(validationErr *jsonschema.ValidationError, printer *message.Printer, out *[]string) {
	if len(validationErr.Causes) == 0 {
		pointer := "/" + strings.Join(validationErr.InstanceLocation, "/")
		text := sanitizeText(validationErr.ErrorKind.LocalizedString(printer))
		*out = append(*out, fmt.Sprintf("at %q: %s", pointer, text))
		return
	}

	for _, cause := range validationErr.Causes {
		collectValidationLeaves(cause, printer, out)
	}
}
