// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

package msgdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Message is one message description document.
// Nil pointer fields are attributes absent from the source document.
// Numbers keep their source literal, so integral floats like 4.0 and
// integers beyond int64 survive unchanged.
type Message struct {
	TotalBytes     *json.Number `json:"totalBytes,omitempty"`
	IsVariableSize *bool        `json:"isVariableSize,omitempty"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Contents       []FieldEntry `json:"contents"`
	ID             json.Number  `json:"id"`
}

// FieldEntry is one row of a message byte layout.
type FieldEntry struct {
	Description *string     `json:"description,omitempty"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Fields      []SubField  `json:"fields,omitempty"`
	Bytes       json.Number `json:"bytes"`
}

// SubField is one named part of a field entry.
type SubField struct {
	Description *string     `json:"description,omitempty"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Bytes       json.Number `json:"bytes"`
}

// ParseMessage decodes message description JSON.
// It does not check the document against the message schema, see Validator.
func ParseMessage(data []byte) (Message, error) {
	var msg Message

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&msg); err != nil {
		return Message{}, fmt.Errorf("%w: %w", ErrDecodeMessage, err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return Message{}, fmt.Errorf("%w: unexpected data after top-level value", ErrDecodeMessage)
	}

	return msg, nil
}
