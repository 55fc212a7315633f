package main

import (
	"encoding/json"
	"io"

	"github.com/spacesedan/sentibatch/config"
	"gopkg.in/yaml.v3"
)

func writeResult(w io.Writer, format string, v any) error {
	if format == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
