// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

package msgdoc

import (
	"strings"
	"unicode/utf8"
)

// heading renders a section title underlined with the selected adornment character.
func heading(title string, adornment byte) string {
	return title + "\n" + strings.Repeat(string(adornment), utf8.RuneCountInString(title)) + "\n"
}

// sanitizeText trims and squashes repeated whitespace so the text fits one table line.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}
