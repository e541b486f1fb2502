package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard is the host capability used by CopyResult
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Saver is the host capability used by DownloadResult. It stores data under
// name and returns where it ended up.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// DirSaver saves files into Dir, the working directory when empty.
type DirSaver struct {
	Dir string
}

func (s DirSaver) Save(name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// knownExtensions maps the leading token of a template name to a file extension
var knownExtensions = map[string]string{
	"go":         "go",
	"golang":     "go",
	"ts":         "ts",
	"typescript": "ts",
	"js":         "js",
	"javascript": "js",
	"py":         "py",
	"python":     "py",
	"rs":         "rs",
	"rust":       "rs",
	"java":       "java",
	"kotlin":     "kt",
	"kt":         "kt",
	"swift":      "swift",
	"cs":         "cs",
	"csharp":     "cs",
	"sql":        "sql",
	"proto":      "proto",
	"graphql":    "graphql",
	"json":       "json",
	"yaml":       "yaml",
}

// ExtensionFor picks the download extension for a template. Overrides win,
// then the template's leading token ("go-struct" -> "go"), then "txt".
func ExtensionFor(template string, overrides map[string]string) string {
	if ext, ok := overrides[template]; ok && ext != "" {
		return strings.TrimPrefix(ext, ".")
	}

	lead := strings.ToLower(template)
	if i := strings.IndexAny(lead, "-_."); i >= 0 {
		lead = lead[:i]
	}
	if ext, ok := knownExtensions[lead]; ok {
		return ext
	}
	return "txt"
}

// DownloadFilename returns generated-<template>.<ext> with the template name verbatim
func DownloadFilename(template string, overrides map[string]string) string {
	return fmt.Sprintf("generated-%s.%s", template, ExtensionFor(template, overrides))
}

// CopyResult puts the last generated code on the clipboard. Failures are
// logged and returned but never reach the form's error field.
func (c *Controller) CopyResult() error {
	code := c.state.GeneratedCode()
	if code == "" {
		return ErrNoResult
	}

	if err := c.clipboard.WriteAll(code); err != nil {
		c.logger.Warn().Err(err).Msg("failed to copy generated code")
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	c.logger.Debug().Int("bytes", len(code)).Msg("generated code copied")
	return nil
}

// DownloadResult saves the last generated code named after the selected
// template and returns the saved path.
func (c *Controller) DownloadResult() (string, error) {
	snap := c.state.Snapshot()
	if snap.GeneratedCode == "" {
		return "", ErrNoResult
	}

	name := DownloadFilename(snap.SelectedTemplate, c.extensions)
	path, err := c.saver.Save(name, []byte(snap.GeneratedCode))
	if err != nil {
		c.logger.Warn().Err(err).Str("file", name).Msg("failed to save generated code")
		return "", err
	}
	c.logger.Info().Str("path", path).Msg("generated code saved")
	return path, nil
}
