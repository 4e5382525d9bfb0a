// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

package msgdoc

import (
	"encoding/json"
	"strings"
)

const (
	// notAvailable replaces absent message size attributes.
	notAvailable = "N/A"
	// noDescription replaces absent field entry descriptions.
	noDescription = "No description"
	// subFieldSeparator joins sub-field names in the Fields column.
	subFieldSeparator = ", "
)

const (
	informationSection = "Message Information"
	contentsSection    = "Message Contents"
)

var (
	informationHeader = []string{"ID", "Total Bytes", "Variable Size", "Description"}
	contentsHeader    = []string{"Name", "Type", "Bytes", "Fields", "Description"}
)

// messageView is a message description with every optional attribute resolved to display text.
type messageView struct {
	Title       string
	Information [][]string
	Contents    [][]string
}

// buildMessageView resolves defaults and converts message values into table cells.
func buildMessageView(msg Message) messageView {
	view := messageView{
		Title: sanitizeText(msg.Title),
		Information: [][]string{{
			msg.ID.String(),
			optionalNumber(msg.TotalBytes),
			optionalBool(msg.IsVariableSize),
			sanitizeText(msg.Description),
		}},
		Contents: make([][]string, 0, len(msg.Contents)),
	}

	for _, entry := range msg.Contents {
		view.Contents = append(view.Contents, []string{
			sanitizeText(entry.Name),
			sanitizeText(entry.Type),
			entry.Bytes.String(),
			subFieldNames(entry.Fields),
			optionalText(entry.Description, noDescription),
		})
	}

	return view
}

// subFieldNames joins sub-field names in declaration order.
func subFieldNames(fields []SubField) string {
	if len(fields) == 0 {
		return ""
	}

	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, sanitizeText(field.Name))
	}

	return strings.Join(names, subFieldSeparator)
}

func optionalNumber(value *json.Number) string {
	if value == nil {
		return notAvailable
	}

	return value.String()
}

// optionalBool renders booleans capitalized, as published pages always spelled them.
func optionalBool(value *bool) string {
	if value == nil {
		return notAvailable
	}

	if *value {
		return "True"
	}

	return "False"
}

func optionalText(value *string, fallback string) string {
	if value == nil {
		return fallback
	}

	return sanitizeText(*value)
}
