package intcode

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a comma separated list of decimal integers.
// Surrounding whitespace and a trailing comma are ignored.
func Parse(r io.Reader) ([]int64, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(string(content))
	text = strings.TrimSuffix(text, ",")
	if text == "" {
		return nil, nil
	}

	fields := strings.Split(text, ",")
	tape := make([]int64, 0, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %w", ErrSyntax, i, err)
		}
		tape = append(tape, value)
	}

	return tape, nil
}

// Load parses the program file at path into a machine of at least capacity cells.
func Load(path string, capacity int) (*Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tape, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return WithInitialSize(tape, capacity), nil
}
