// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

package msgdoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// messageFileExt selects message description files in the input directory.
	messageFileExt = ".json"
	// pageFileExt is the extension of generated pages and index files.
	pageFileExt = ".rst"
)

// Default build layout, relative to the working directory.
const (
	DefaultInputDir          = "messages"
	DefaultOutputDir         = "docs/source/messages"
	DefaultRootIndexPath     = "docs/source/index.rst"
	DefaultMessagesIndexPath = "docs/source/messages/index.rst"
	DefaultRootTitle         = "Project Documentation"
	DefaultMessagesTitle     = "Telemetry Messages"
)

const (
	// ErrorKindValidation marks documents rejected by the message schema.
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindDecode marks documents with malformed JSON syntax.
	ErrorKindDecode ErrorKind = "decode"
	// ErrorKindOther marks any other per-file failure, for example I/O errors.
	ErrorKindOther ErrorKind = "other"
)

// ErrorKind classifies a per-file build failure.
type ErrorKind string

// BuildOptions configures one documentation build.
type BuildOptions struct {
	// Validator checks every input document; nil compiles the embedded schema.
	Validator *Validator
	// Logger receives per-file diagnostics; nil discards them.
	Logger *slog.Logger

	InputDir          string
	OutputDir         string
	RootIndexPath     string
	MessagesIndexPath string
	RootTitle         string
	MessagesTitle     string

	// MaxDepth is the toctree depth of both index files.
	MaxDepth int
	// Workers limits concurrent renders; 0 uses one worker per CPU.
	Workers int
}

// BuildReport summarizes a finished build.
type BuildReport struct {
	// Pages lists generated page paths in input order.
	Pages []string
	// Skipped lists inputs omitted from the index.
	Skipped []SkippedFile
}

// SkippedFile is one input file that failed and was left out of the build.
type SkippedFile struct {
	Err  error
	Path string
	Kind ErrorKind
}

// fileResult is the outcome of one input file.
type fileResult struct {
	err      error
	pagePath string
	entry    string
}

// ClassifyError maps a per-file build error to its kind.
func ClassifyError(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrValidateMessage):
		return ErrorKindValidation
	case errors.Is(err, ErrDecodeMessage):
		return ErrorKindDecode
	default:
		return ErrorKindOther
	}
}

// Build renders every message description of the input directory and regenerates both index files.
// Failing inputs are logged and skipped; only directory level and index write failures abort the build.
func Build(ctx context.Context, opt BuildOptions) (BuildReport, error) {
	opt = normalizeBuildOptions(opt)

	validator := opt.Validator
	if validator == nil {
		var err error
		if validator, err = NewValidator(); err != nil {
			return BuildReport{}, err
		}
	}

	files, err := discoverMessageFiles(opt.InputDir)
	if err != nil {
		return BuildReport{}, err
	}

	if err := os.MkdirAll(opt.OutputDir, 0o755); err != nil {
		return BuildReport{}, fmt.Errorf("%w: create output directory %q: %w", ErrWriteOutput, opt.OutputDir, err)
	}

	results := make([]fileResult, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opt.Workers)

	for index, name := range files {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[index] = processMessageFile(validator, opt, name)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return BuildReport{}, err
	}

	if err := ctx.Err(); err != nil {
		return BuildReport{}, err
	}

	report := BuildReport{}
	entries := make([]string, 0, len(results))
	for index, result := range results {
		inputPath := filepath.Join(opt.InputDir, files[index])
		if result.err != nil {
			kind := ClassifyError(result.err)
			opt.Logger.Warn("skip message", "file", inputPath, "kind", string(kind), "err", result.err)
			report.Skipped = append(report.Skipped, SkippedFile{Path: inputPath, Kind: kind, Err: result.err})
			continue
		}

		opt.Logger.Info("page generated", "file", result.pagePath)
		report.Pages = append(report.Pages, result.pagePath)
		entries = append(entries, result.entry)
	}

	indexOptions := IndexOptions{MaxDepth: opt.MaxDepth}
	messagesIndex := RenderIndex(opt.MessagesTitle, entries, indexOptions)
	if err := writeOutputFile(opt.MessagesIndexPath, messagesIndex); err != nil {
		return BuildReport{}, err
	}
	opt.Logger.Info("index updated", "file", opt.MessagesIndexPath, "entries", len(entries))

	sectionEntry, err := indexEntryPath(opt.RootIndexPath, opt.MessagesIndexPath)
	if err != nil {
		return BuildReport{}, err
	}

	indexOptions.KeepPaths = true
	rootIndex := RenderIndex(opt.RootTitle, []string{sectionEntry}, indexOptions)
	if err := writeOutputFile(opt.RootIndexPath, rootIndex); err != nil {
		return BuildReport{}, err
	}
	opt.Logger.Info("index updated", "file", opt.RootIndexPath, "entries", 1)

	return report, nil
}

// normalizeBuildOptions fills empty options with default build layout.
func normalizeBuildOptions(opt BuildOptions) BuildOptions {
	opt.InputDir = orDefault(opt.InputDir, DefaultInputDir)
	opt.OutputDir = orDefault(opt.OutputDir, DefaultOutputDir)
	opt.RootIndexPath = orDefault(opt.RootIndexPath, DefaultRootIndexPath)
	opt.MessagesIndexPath = orDefault(opt.MessagesIndexPath, DefaultMessagesIndexPath)
	opt.RootTitle = orDefault(opt.RootTitle, DefaultRootTitle)
	opt.MessagesTitle = orDefault(opt.MessagesTitle, DefaultMessagesTitle)

	if opt.MaxDepth < 1 {
		opt.MaxDepth = defaultIndexMaxDepth
	}

	if opt.Workers <= 0 {
		opt.Workers = runtime.NumCPU()
	}

	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return opt
}

// discoverMessageFiles lists message description file names of one directory in sorted order.
func discoverMessageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadInputDir, dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), messageFileExt) {
			continue
		}

		files = append(files, entry.Name())
	}

	return files, nil
}

// processMessageFile renders one input file into its page next to the other generated pages.
// Pages that would land on an index file are refused.
func processMessageFile(validator *Validator, opt BuildOptions, name string) fileResult {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	pagePath := filepath.Join(opt.OutputDir, stem+pageFileExt)
	for _, indexPath := range []string{opt.MessagesIndexPath, opt.RootIndexPath} {
		if samePath(pagePath, indexPath) {
			return fileResult{err: fmt.Errorf("%w: page %q is an index file", ErrReservedPagePath, pagePath)}
		}
	}

	page, err := RenderFile(filepath.Join(opt.InputDir, name), validator)
	if err != nil {
		return fileResult{err: err}
	}

	if err := writeOutputFile(pagePath, page); err != nil {
		return fileResult{err: err}
	}

	return fileResult{pagePath: pagePath, entry: stem}
}

// indexEntryPath returns toctree entry of target index relative to the directory of parent index.
func indexEntryPath(parentIndexPath, targetIndexPath string) (string, error) {
	parentDir, err := filepath.Abs(filepath.Dir(parentIndexPath))
	if err != nil {
		return "", fmt.Errorf("resolve index path %q: %w", parentIndexPath, err)
	}

	target, err := filepath.Abs(targetIndexPath)
	if err != nil {
		return "", fmt.Errorf("resolve index path %q: %w", targetIndexPath, err)
	}

	relative, err := filepath.Rel(parentDir, target)
	if err != nil {
		return "", fmt.Errorf("relate index %q to %q: %w", targetIndexPath, parentIndexPath, err)
	}

	relative = filepath.ToSlash(relative)
	return strings.TrimSuffix(relative, filepath.Ext(relative)), nil
}

// writeOutputFile writes generated text and creates missing parent directories.
func writeOutputFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	//nolint:gosec // generated documentation is published as readable files.
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	return nil
}

// samePath reports whether two paths resolve to the same absolute location.
func samePath(left, right string) bool {
	leftAbs, err := filepath.Abs(left)
	if err != nil {
		return filepath.Clean(left) == filepath.Clean(right)
	}

	rightAbs, err := filepath.Abs(right)
	if err != nil {
		return filepath.Clean(left) == filepath.Clean(right)
	}

	return leftAbs == rightAbs
}

// orDefault returns fallback for blank values.
func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}

	return value
}
