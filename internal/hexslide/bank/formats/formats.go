// Package formats provides pluggable puzzle-bank file format parsers.
// Parsers only split files into raw entry strings; decoding and validation
// happen in the bank package.
package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bank is a parsed bank file: hand-picked levels followed by the random pool.
type Bank struct {
	Name   string
	Levels []string
	Pool   []string
}

// YAMLBank represents the YAML structure for a bank file.
type YAMLBank struct {
	Name   string   `yaml:"name,omitempty"`
	Levels []string `yaml:"levels"`
	Pool   []string `yaml:"pool,omitempty"`
}

// ParseText parses the two-line text format: the first line holds the
// comma-separated level entries, the second the random pool. Blank entries are
// ignored and the pool line may be missing.
func ParseText(data []byte) (Bank, error) {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return Bank{}, fmt.Errorf("reading text bank: %w", err)
	}

	if len(lines) == 0 {
		return Bank{}, fmt.Errorf("text bank has no level line")
	}
	if len(lines) > 2 {
		return Bank{}, fmt.Errorf("text bank has %d lines, expected at most 2", len(lines))
	}

	b := Bank{Levels: splitEntries(lines[0])}
	if len(lines) == 2 {
		b.Pool = splitEntries(lines[1])
	}
	return b, nil
}

// ParseYAML parses a YAML bank file.
func ParseYAML(data []byte) (Bank, error) {
	var yb YAMLBank
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Bank{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return Bank{
		Name:   yb.Name,
		Levels: cleanEntries(yb.Levels),
		Pool:   cleanEntries(yb.Pool),
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".bank", ".yaml", ".yml"}
}

// Parse routes to the parser for a file extension.
func Parse(data []byte, ext string) (Bank, error) {
	switch strings.ToLower(ext) {
	case ".txt", ".bank", "":
		return ParseText(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Bank{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func splitEntries(line string) []string {
	return cleanEntries(strings.Split(line, ","))
}

func cleanEntries(raw []string) []string {
	entries := make([]string, 0, len(raw))
	for _, e := range raw {
		if e = strings.TrimSpace(e); e != "" {
			entries = append(entries, e)
		}
	}
	return entries
}
