package lex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DecodeEvent converts a generic object (as produced by a JSON or YAML
// decoder) into an Event. Scalar slot values such as `age: 30` are accepted
// and converted to their string form.
func DecodeEvent(raw map[string]any) (*Event, error) {
	var ev Event
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &ev,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}
	return &ev, nil
}

// ParseEvent decodes an event document. format is "json" or "yaml"; an
// empty format is treated as YAML, which also accepts JSON documents.
func ParseEvent(data []byte, format string) (*Event, error) {
	raw := map[string]any{}
	switch strings.ToLower(format) {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse event json: %w", err)
		}
	case "", "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse event yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported event format %q", format)
	}
	return DecodeEvent(raw)
}

// LoadEvent reads an event fixture from a .json, .yaml or .yml file.
func LoadEvent(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event file: %w", err)
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return ParseEvent(data, ext)
}
