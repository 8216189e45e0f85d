// Package iojson writes command output as JSON for scripting.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the JSON shape used when a command reports a failure.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// Write writes obj as indented JSON followed by a newline.
func Write(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteLine writes obj as a single line of JSON (JSON lines format).
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteError writes msg and data as an Error object.
func WriteError(w io.Writer, msg string, data map[string]any) error {
	return WriteLine(w, Error{Message: msg, Data: data})
}
