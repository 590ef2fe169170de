// Package iojson has helpers for reading command input and writing JSON
// output from the command line.
package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// Error is the JSON shape written when a command fails in JSON mode.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func jsonError(msg string, jsonErr error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError renders msg and data as an indented Error. If marshaling
// fails a minimal JSON object describing the failure is returned instead.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return jsonError(msg, err)
	}
	return string(bits)
}

// WriteError writes an Error to stderr.
func WriteError(msg string, data map[string]any) error {
	_, err := fmt.Fprintln(os.Stderr, MarshalError(msg, data))
	return err
}

// Marshal returns obj as indented JSON.
func Marshal(obj any) ([]byte, error) {
	return json.MarshalIndent(obj, "", "  ")
}

// WriteWith writes obj as indented JSON to w. Marshaling failures are
// reported to ew.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := Marshal(obj)
	if err != nil {
		_, err = fmt.Fprintln(ew, jsonError("error marshaling in iojson.Write", err))
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr].
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}
