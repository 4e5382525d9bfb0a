// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

package msgdoc

import (
	"fmt"
	"os"
	"strings"
)

// RenderFile reads, validates and renders one message description file.
func RenderFile(path string, validator *Validator) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMessageFile, err)
	}

	return Render(data, validator)
}

// Render validates message description bytes and renders reStructuredText page.
// A nil validator skips schema checks.
func Render(data []byte, validator *Validator) (string, error) {
	if validator != nil {
		if err := validator.Validate(data); err != nil {
			return "", err
		}
	}

	msg, err := ParseMessage(data)
	if err != nil {
		return "", err
	}

	return RenderMessage(msg)
}

// RenderMessage converts one message description into deterministic reStructuredText page:
// the title, the message information table and the message contents table.
func RenderMessage(msg Message) (string, error) {
	view := buildMessageView(msg)

	information, err := RenderTable(informationHeader, view.Information)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", strings.ToLower(informationSection), err)
	}

	contents, err := RenderTable(contentsHeader, view.Contents)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", strings.ToLower(contentsSection), err)
	}

	var out strings.Builder
	out.WriteString(heading(view.Title, '='))
	out.WriteString("\n")
	out.WriteString(heading(informationSection, '-'))
	out.WriteString("\n")
	out.WriteString(information)
	out.WriteString("\n")
	out.WriteString(heading(contentsSection, '-'))
	out.WriteString("\n")
	out.WriteString(contents)

	return out.String(), nil
}
