// Package commands implements the archivx subcommands.
package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

// readInput reads path, or standard input when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// isJSONArray reports whether data holds a JSON array rather than an object.
func isJSONArray(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// decodeOneOrMany decodes either a single JSON object or an array of them.
func decodeOneOrMany[T any](data []byte) ([]T, error) {
	if isJSONArray(data) {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decode json array: %w", err)
		}
		return items, nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("decode json object: %w", err)
	}
	return []T{item}, nil
}

func marshalIndent(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(out), nil
}
