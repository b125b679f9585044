package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"tacticsim/internal/match"
)

// encode renders v in the requested format. msgpack reuses the json field
// names.
func encode(format string, v any) ([]byte, error) {
	switch format {
	case "", "json":
		return match.MarshalPretty(v), nil
	case "yaml":
		return yaml.Marshal(v)
	case "msgpack":
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

func writeOutput(path, format string, v any) error {
	b, err := encode(format, v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
