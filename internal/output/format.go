package output

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// Format selects how a command renders its result.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// ParseFormat maps the --json and --yaml flags to a Format.
func ParseFormat(jsonFlag, yamlFlag bool) (Format, error) {
	switch {
	case jsonFlag && yamlFlag:
		return FormatText, errors.New("--json and --yaml are mutually exclusive")
	case jsonFlag:
		return FormatJSON, nil
	case yamlFlag:
		return FormatYAML, nil
	default:
		return FormatText, nil
	}
}

// JSON writes v as indented JSON followed by a newline.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func (p *Printer) YAML(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Render writes v as JSON or YAML, or calls text for FormatText.
func (p *Printer) Render(f Format, v any, text func(*Printer) error) error {
	switch f {
	case FormatJSON:
		return p.JSON(v)
	case FormatYAML:
		return p.YAML(v)
	default:
		if err := text(p); err != nil {
			return err
		}
		return p.Err()
	}
}
