package utils

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON marshals data with two-space indentation and writes it to w followed by a newline.
func WriteJSON(w io.Writer, data interface{}) error {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	bytes = append(bytes, '\n')
	if _, err := w.Write(bytes); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
