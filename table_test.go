// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

package msgdoc

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderTableLayout(t *testing.T) {
	t.Parallel()

	got, err := RenderTable([]string{"A", "Long header"}, [][]string{
		{"wide cell", "x"},
		{"", "y"},
	})
	if err != nil {
		t.Fatalf("RenderTable: %v", err)
	}

	want := "+-----------+-------------+\n" +
		"| A         | Long header |\n" +
		"+===========+=============+\n" +
		"| wide cell | x           |\n" +
		"+-----------+-------------+\n" +
		"|           | y           |\n" +
		"+-----------+-------------+\n"
	if got != want {
		t.Fatalf("table mismatch\n--- got ---\n%s--- want ---\n%s", got, want)
	}
}

func TestRenderTableColumnWidthIsLongestCell(t *testing.T) {
	t.Parallel()

	header := []string{"ID", "Name", "Note"}
	rows := [][]string{
		{"1", "a", "température"},
		{"1024", "bb", ""},
		{"7", "", "n"},
	}

	got, err := RenderTable(header, rows)
	if err != nil {
		t.Fatalf("RenderTable: %v", err)
	}

	border := strings.SplitN(got, "\n", 2)[0]
	segments := strings.Split(strings.Trim(border, "+"), "+")
	if len(segments) != len(header) {
		t.Fatalf("border has %d columns, want %d: %q", len(segments), len(header), border)
	}

	for index := range header {
		want := utf8.RuneCountInString(header[index])
		for _, row := range rows {
			want = max(want, utf8.RuneCountInString(row[index]))
		}

		if got := len(segments[index]) - 2; got != want {
			t.Fatalf("column %d width = %d, want %d", index, got, want)
		}
	}

	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if utf8.RuneCountInString(line) != utf8.RuneCountInString(border) {
			t.Fatalf("line %q is not aligned with border %q", line, border)
		}
	}
}

func TestRenderTableBorderCounts(t *testing.T) {
	t.Parallel()

	for _, rowCount := range []int{0, 1, 5} {
		rows := make([][]string, 0, rowCount)
		for range rowCount {
			rows = append(rows, []string{"v"})
		}

		got, err := RenderTable([]string{"H"}, rows)
		if err != nil {
			t.Fatalf("RenderTable: %v", err)
		}

		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
		if lines[2] != "+===+" {
			t.Fatalf("header separator = %q", lines[2])
		}

		dashBorders := 0
		doubleBorders := 0
		for _, line := range lines[1:] {
			switch {
			case strings.HasPrefix(line, "+-"):
				dashBorders++
			case strings.HasPrefix(line, "+="):
				doubleBorders++
			}
		}

		if dashBorders != rowCount || doubleBorders != 1 {
			t.Fatalf("rows=%d: dash borders=%d double borders=%d", rowCount, dashBorders, doubleBorders)
		}
	}
}

func TestRenderTableEmptyBody(t *testing.T) {
	t.Parallel()

	got, err := RenderTable([]string{"Name", "Type"}, nil)
	if err != nil {
		t.Fatalf("RenderTable: %v", err)
	}

	want := "+------+------+\n| Name | Type |\n+======+======+\n"
	if got != want {
		t.Fatalf("table = %q, want %q", got, want)
	}
}

func TestRenderTableRejectsArityMismatch(t *testing.T) {
	t.Parallel()

	cases := map[string][][]string{
		"short": {{"a", "b"}, {"c"}},
		"long":  {{"a", "b", "c"}},
	}

	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := RenderTable([]string{"X", "Y"}, rows)
			if !errors.Is(err, ErrTableRowArity) {
				t.Fatalf("expected arity error, got %v", err)
			}
		})
	}
}

func TestRenderTableRejectsEmptyHeader(t *testing.T) {
	t.Parallel()

	if _, err := RenderTable(nil, nil); !errors.Is(err, ErrTableNoColumns) {
		t.Fatalf("expected no columns error, got %v", err)
	}
}
