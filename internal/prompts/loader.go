// Package prompts loads the embedded prompt templates sent to the AI service.
// Templates live in JSON files keyed by prompt name and are embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"sync"
)

// AnalysisFile holds the critique, skill-extraction and recommendation prompts.
const AnalysisFile = "analysis.json"

//go:embed *.json
var promptFiles embed.FS

var placeholder = regexp.MustCompile(`\{\{\.(\w+)\}\}`)

// library is every embedded file parsed on first use, keyed by file name.
var library = sync.OnceValues(func() (map[string]map[string]string, error) {
	return parseAll(promptFiles)
})

func parseAll(fsys fs.FS) (map[string]map[string]string, error) {
	names, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, err
	}

	files := make(map[string]map[string]string, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read prompt file %s: %w", name, err)
		}
		var entries map[string]string
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse prompt file %s: %w", name, err)
		}
		files[name] = entries
	}
	return files, nil
}

func file(filename string) (map[string]string, error) {
	files, err := library()
	if err != nil {
		return nil, err
	}
	entries, ok := files[filename]
	if !ok {
		return nil, fmt.Errorf("prompt file %s is not embedded", filename)
	}
	return entries, nil
}

// Get returns the prompt stored under key in filename.
func Get(filename, key string) (string, error) {
	entries, err := file(filename)
	if err != nil {
		return "", err
	}
	prompt, ok := entries[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for prompts the binary cannot run without.
// Prompts are embedded, so a miss is a programming error.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces {{.Key}} placeholders with values from data in a single pass,
// so placeholder-like text inside a value is never expanded.
// Placeholders without a value are left in place.
func Format(template string, data map[string]string) string {
	return placeholder.ReplaceAllStringFunc(template, func(match string) string {
		key := placeholder.FindStringSubmatch(match)[1]
		if value, ok := data[key]; ok {
			return value
		}
		return match
	})
}

func keys(filename string) ([]string, error) {
	entries, err := file(filename)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for key := range entries {
		out = append(out, key)
	}
	sort.Strings(out)
	return out, nil
}
