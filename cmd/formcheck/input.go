package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/form"
)

type inputFormat string

const (
	formatJSONL inputFormat = "jsonl"
	formatYAML  inputFormat = "yaml"
)

var ErrUnknownFormat = errors.New("unknown input format")

// maxLineSize bounds a single jsonl record.
const maxLineSize = 4 << 20

func parseInputFormat(s string) (inputFormat, error) {
	switch f := inputFormat(strings.ToLower(s)); f {
	case formatJSONL, formatYAML:
		return f, nil
	case "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// numberedRecord is a raw record with its 1-based position in the input:
// the line number for jsonl, the list index for yaml.
type numberedRecord struct {
	line int
	raw  form.Raw
}

func readRecords(r io.Reader, format inputFormat) ([]numberedRecord, error) {
	if format == formatYAML {
		return readYAML(r)
	}
	return readJSONL(r)
}

func readJSONL(r io.Reader) ([]numberedRecord, error) {
	var records []numberedRecord
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		var raw form.Raw
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, numberedRecord{line: line, raw: raw})
	}
	if err := scanner.Err(); err != nil {
		// The failing line is the one after the last line scanned.
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}
	return records, nil
}

func readYAML(r io.Reader) ([]numberedRecord, error) {
	var raws []form.Raw
	if err := yaml.NewDecoder(r).Decode(&raws); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	records := make([]numberedRecord, 0, len(raws))
	for i, raw := range raws {
		records = append(records, numberedRecord{line: i + 1, raw: raw})
	}
	return records, nil
}
