// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

// msgdoc generates reStructuredText pages from message description JSON.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/msgdoc"
	"github.com/woozymasta/msgdoc/internal/config"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/msgdoc"
	_buildTime string
)

// cliOptions describes msgdoc CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Build    buildCommand    `command:"build" description:"Render message directory into Sphinx source tree"`
	Render   renderCommand   `command:"render" description:"Render one message description to reStructuredText"`
	Validate validateCommand `command:"validate" description:"Check message descriptions against the message schema"`
	Schema   schemaCommand   `command:"schema" description:"Print embedded message JSON Schema"`
}

// layoutFlags overrides config file layout settings.
type layoutFlags struct {
	InputDir      string `short:"i" long:"input" description:"Directory with message description .json files"`
	OutputDir     string `short:"o" long:"output" description:"Directory for generated message pages"`
	RootIndex     string `long:"root-index" description:"Root toctree index file path"`
	MessagesIndex string `long:"messages-index" description:"Messages toctree index file path"`
	Workers       int    `short:"j" long:"workers" description:"Concurrent renders (0 = one per CPU)"`
}

// buildCommand runs the directory build.
type buildCommand struct {
	runner *cliRunner

	ConfigPath string      `short:"c" long:"config" description:"YAML project config (default: msgdoc.yaml when present)"`
	Layout     layoutFlags `group:"Layout"`
	Strict     bool        `long:"strict" description:"Exit with error when any message file was skipped"`
	Quiet      bool        `short:"q" long:"quiet" description:"Log only skipped files"`
}

// Execute runs build subcommand.
func (command *buildCommand) Execute(_ []string) error {
	cfg, err := config.Load(command.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg = command.applyLayout(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return command.runner.runBuild(cfg, command.Strict, command.Quiet)
}

// applyLayout copies explicitly set layout flags over config values.
func (command *buildCommand) applyLayout(cfg config.Config) config.Config {
	layout := command.Layout
	if value := strings.TrimSpace(layout.InputDir); value != "" {
		cfg.InputDir = value
	}

	if value := strings.TrimSpace(layout.OutputDir); value != "" {
		cfg.OutputDir = value
	}

	if value := strings.TrimSpace(layout.RootIndex); value != "" {
		cfg.RootIndex = value
	}

	if value := strings.TrimSpace(layout.MessagesIndex); value != "" {
		cfg.MessagesIndex = value
	}

	if command.runner.optionSet("workers") {
		cfg.Workers = layout.Workers
	}

	return cfg
}

// renderCommand renders one message description.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input message .json file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output .rst file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command.Args.Input, command.Args.Output)
}

// validateCommand checks message descriptions without rendering.
type validateCommand struct {
	runner *cliRunner
	Args   struct {
		Files []string `positional-arg-name:"file" description:"Message description .json files" required:"1"`
	} `positional-args:"yes"`
}

// Execute runs validate subcommand.
func (command *validateCommand) Execute(_ []string) error {
	return command.runner.runValidate(command.Args.Files)
}

// schemaCommand exports embedded message schema.
type schemaCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output schema file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs schema subcommand.
func (command *schemaCommand) Execute(_ []string) error {
	return command.runner.writeOutput(command.Args.Output, msgdoc.MessageSchema(), "schema")
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	parser      *flags.Parser
	programName string
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "msgdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runBuild renders the configured message directory and reports skipped files.
func (runner *cliRunner) runBuild(cfg config.Config, strict, quiet bool) error {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	options := cfg.BuildOptions()
	options.Logger = slog.New(slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{Level: level}))

	report, err := msgdoc.Build(ctx, options)
	if err != nil {
		return fmt.Errorf("build documentation: %w", err)
	}

	if strict && len(report.Skipped) > 0 {
		return fmt.Errorf("build documentation: %d of %d message files skipped", len(report.Skipped), len(report.Skipped)+len(report.Pages))
	}

	return nil
}

// runRender renders one message from file or stdin and writes result to stdout or file.
func (runner *cliRunner) runRender(inputPath, outputPath string) error {
	data, err := runner.readMessageInput(inputPath)
	if err != nil {
		return fmt.Errorf("read message input: %w", err)
	}

	validator, err := msgdoc.NewValidator()
	if err != nil {
		return err
	}

	page, err := msgdoc.Render(data, validator)
	if err != nil {
		return fmt.Errorf("render message: %w", err)
	}

	return runner.writeOutput(outputPath, []byte(page), "page")
}

// runValidate checks every file and prints one diagnostic line per failure.
func (runner *cliRunner) runValidate(paths []string) error {
	validator, err := msgdoc.NewValidator()
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err == nil {
			err = validator.Validate(data)
		} else {
			err = fmt.Errorf("%w: %w", msgdoc.ErrReadMessageFile, err)
		}

		if err != nil {
			failed++
			_, _ = fmt.Fprintf(runner.stderr, "%s: %s error: %v\n", path, msgdoc.ClassifyError(err), err)
			continue
		}

		_, _ = fmt.Fprintf(runner.stdout, "%s: ok\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d message files invalid", failed, len(paths))
	}

	return nil
}

// readMessageInput reads message from file path or stdin.
func (runner *cliRunner) readMessageInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read message file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read message from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read message from stdin: empty input")
	}

	return data, nil
}

// writeOutput writes data to stdout or to the selected file.
func (runner *cliRunner) writeOutput(outputPath string, data []byte, what string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	//nolint:gosec // generated documentation is published as readable files.
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, outputPath, err)
	}

	return nil
}

// optionSet reports whether long option was given on the active command line.
func (runner *cliRunner) optionSet(longName string) bool {
	if runner.parser == nil || runner.parser.Active == nil {
		return false
	}

	option := runner.parser.Active.FindOptionByLongName(longName)
	return option != nil && option.IsSet()
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Build.runner = runner
	options.Render.runner = runner
	options.Validate.runner = runner
	options.Schema.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	runner.parser = parser
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"build": strings.TrimSpace(fmt.Sprintf(`
Render every .json message description of the input directory into
reStructuredText pages and regenerate the messages and root toctree indexes.
Invalid files are logged and skipped; settings come from msgdoc.yaml when present.

Examples:
> $ %s build
> $ %s build -c docs/msgdoc.yaml -j 0 --strict
> $ %s build -i messages -o docs/source/messages
`, programName, programName, programName)),
		"render": strings.TrimSpace(fmt.Sprintf(`
Validate and render one message description.
Reads JSON from file argument or stdin; writes page to file argument or stdout.

Examples:
> $ %s render messages/ping.json > ping.rst
> $ cat messages/ping.json | %s render
`, programName, programName)),
		"validate": strings.TrimSpace(fmt.Sprintf(`
Check message descriptions against the embedded message schema.

Examples:
> $ %s validate messages/*.json
`, programName)),
		"schema": strings.TrimSpace(fmt.Sprintf(`
Print embedded message JSON Schema, for editors and CI checks.

Examples:
> $ %s schema > message.schema.json
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(output io.Writer) {
	_, _ = fmt.Fprintf(output, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
