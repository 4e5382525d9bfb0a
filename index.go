// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

package msgdoc

import (
	"path"
	"slices"
	"strconv"
	"strings"
)

// defaultIndexMaxDepth is the toctree depth used when caller does not provide one.
const defaultIndexMaxDepth = 2

// IndexOptions configures toctree index rendering.
type IndexOptions struct {
	// MaxDepth is the toctree :maxdepth: value; values below 1 fall back to 2.
	MaxDepth int
	// KeepPaths lists entries with their path prefix instead of the bare document name.
	KeepPaths bool
}

// RenderIndex renders a titled toctree listing entries in lexicographic order, one per line.
func RenderIndex(title string, entries []string, opt IndexOptions) string {
	maxDepth := opt.MaxDepth
	if maxDepth < 1 {
		maxDepth = defaultIndexMaxDepth
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSpace(filepathToSlash(entry))
		if !opt.KeepPaths {
			name = path.Base(name)
		}

		if name == "" || name == "." || name == "/" {
			continue
		}

		names = append(names, name)
	}

	slices.Sort(names)

	var out strings.Builder
	out.WriteString(heading(sanitizeText(title), '='))
	out.WriteString("\n.. toctree::\n")
	out.WriteString("   :maxdepth: " + strconv.Itoa(maxDepth) + "\n\n")
	for _, name := range names {
		out.WriteString("   " + name + "\n")
	}

	return out.String()
}

// filepathToSlash normalizes Windows separators in index entries.
func filepathToSlash(value string) string {
	return strings.ReplaceAll(value, "\\", "/")
}
