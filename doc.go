// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

/*
Package msgdoc renders reStructuredText documentation from message description
documents.

A message description is a JSON document with the binary layout of one
telemetry message type: title, numeric id, optional total size, and the
ordered list of field entries. Every page holds the message title, a one-row
"Message Information" grid table and a "Message Contents" grid table with one
row per field entry. Output is deterministic.

Render one message from bytes:

	validator, err := msgdoc.NewValidator()
	if err != nil {
		return err
	}

	page, err := msgdoc.Render(data, validator)
	if err != nil {
		return err
	}

	fmt.Print(page)

Render a grid table directly:

	table, err := msgdoc.RenderTable(
		[]string{"Name", "Bytes"},
		[][]string{{"seq", "4"}},
	)
	if err != nil {
		return err
	}

	fmt.Print(table)

Build a Sphinx source tree from a directory of message descriptions:

	report, err := msgdoc.Build(ctx, msgdoc.BuildOptions{
		InputDir:  "messages",
		OutputDir: "docs/source/messages",
		Logger:    slog.Default(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("pages=%d skipped=%d\n", len(report.Pages), len(report.Skipped))

Build never stops on a broken input file: validation, decode and I/O
failures are logged, the file is skipped and left out of the generated
index. Use ClassifyError to tell the kinds apart.
*/
package msgdoc
