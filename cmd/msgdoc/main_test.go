// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const pingMessage = `{"title":"Ping","id":1,"description":"keepalive","contents":[{"name":"seq","type":"uint32","bytes":4}]}`

func TestRunRenderWritesPageToStdout(t *testing.T) {
	t.Parallel()

	messagePath := writeMessageFixture(t, t.TempDir(), "ping.json", pingMessage)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", messagePath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.HasPrefix(stdout.String(), "Ping\n====\n") {
		t.Fatalf("stdout does not start with page title: %s", stdout.String())
	}
}

func TestRunRenderFromStdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"render"}, strings.NewReader(pingMessage), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "| seq  | uint32 | 4     |        | No description |") {
		t.Fatalf("expected contents row in output: %s", stdout.String())
	}
}

func TestRunRenderEmptyStdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"render"}, strings.NewReader("  \n"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "empty input") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunRenderWritesPageToOutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	messagePath := writeMessageFixture(t, dir, "ping.json", pingMessage)
	outPath := filepath.Join(dir, "ping.rst")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", messagePath, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read out file: %v", err)
	}

	if !strings.Contains(string(content), "Message Contents\n----------------\n") {
		t.Fatalf("output file does not contain contents section: %s", string(content))
	}
}

func TestRunRenderRejectsInvalidMessage(t *testing.T) {
	t.Parallel()

	messagePath := writeMessageFixture(t, t.TempDir(), "bad.json", `{"title":"Bad","contents":[]}`)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", messagePath}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "validate message") {
		t.Fatalf("expected validation diagnostic, got: %s", stderr.String())
	}
}

func TestRunValidateReportsEachFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeMessageFixture(t, dir, "good.json", pingMessage)
	bad := writeMessageFixture(t, dir, "bad.json", `{"title":`)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"validate", good, bad}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stdout.String(), good+": ok") {
		t.Fatalf("missing ok line: %s", stdout.String())
	}

	if !strings.Contains(stderr.String(), bad+": decode error") {
		t.Fatalf("missing decode failure line: %s", stderr.String())
	}

	if !strings.Contains(stderr.String(), "1 of 2 message files invalid") {
		t.Fatalf("missing summary: %s", stderr.String())
	}
}

func TestRunValidateRequiresFiles(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"validate"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("run exit code = %d, want 2", code)
	}
}

func TestRunSchemaPrintsEmbeddedSchema(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"schema"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	var schema map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &schema); err != nil {
		t.Fatalf("schema output is not JSON: %v", err)
	}

	if _, ok := schema["properties"]; !ok {
		t.Fatalf("schema has no properties: %s", stdout.String())
	}
}

func TestRunBuildWithFlags(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	input := filepath.Join(root, "messages")
	writeMessageFixture(t, input, "ping.json", pingMessage)
	writeMessageFixture(t, input, "broken.json", `{`)

	output := filepath.Join(root, "site", "messages")
	rootIndex := filepath.Join(root, "site", "index.rst")
	messagesIndex := filepath.Join(output, "index.rst")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{
		"build",
		"--config", writeConfigFixture(t, root, "max_depth: 3\n"),
		"-i", input,
		"-o", output,
		"--root-index", rootIndex,
		"--messages-index", messagesIndex,
		"-j", "0",
	}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	index, err := os.ReadFile(messagesIndex)
	if err != nil {
		t.Fatalf("read messages index: %v", err)
	}

	if !strings.Contains(string(index), ":maxdepth: 3\n\n   ping\n") {
		t.Fatalf("unexpected messages index: %s", string(index))
	}

	rootContent, err := os.ReadFile(rootIndex)
	if err != nil {
		t.Fatalf("read root index: %v", err)
	}

	if !strings.Contains(string(rootContent), "   messages/index\n") {
		t.Fatalf("root index does not list messages index: %s", string(rootContent))
	}

	if !strings.Contains(stderr.String(), "kind=decode") {
		t.Fatalf("expected skipped file diagnostic: %s", stderr.String())
	}
}

func TestRunBuildStrictFailsOnSkippedFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	input := filepath.Join(root, "messages")
	writeMessageFixture(t, input, "broken.json", `{`)

	configPath := writeConfigFixture(t, root, strings.Join([]string{
		"input_dir: " + input,
		"output_dir: " + filepath.Join(root, "out"),
		"root_index: " + filepath.Join(root, "index.rst"),
		"messages_index: " + filepath.Join(root, "out", "index.rst"),
		"",
	}, "\n"))

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"build", "-q", "--strict", "-c", configPath}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1; stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "1 of 1 message files skipped") {
		t.Fatalf("missing strict summary: %s", stderr.String())
	}

	if strings.Contains(stderr.String(), "index updated") {
		t.Fatalf("quiet build should not log info lines: %s", stderr.String())
	}
}

func TestRunBuildMissingConfig(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"build", "-c", filepath.Join(t.TempDir(), "absent.yaml")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "load config") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunHelpExitCodeZero(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"build", "--help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "msgdoc.yaml") {
		t.Fatalf("help output does not describe config lookup: %s", stdout.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"publish"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("run exit code = %d, want 2", code)
	}
}

func writeMessageFixture(t *testing.T, dir, name, body string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create fixture dir: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write message fixture: %v", err)
	}

	return path
}

func writeConfigFixture(t *testing.T, dir, body string) string {
	t.Helper()

	path := filepath.Join(dir, "msgdoc.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	return path
}
