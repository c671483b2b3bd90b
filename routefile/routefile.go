package routefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/pathmatch/match"
)

// Entry declares one route of a table: the pattern, an opaque payload
// handed back on a match, and builtin validator names keyed by variable.
type Entry struct {
	Pattern    string            `yaml:"pattern" json:"pattern" validate:"required"`
	Payload    any               `yaml:"payload,omitempty" json:"payload,omitempty"`
	Validators map[string]string `yaml:"validators,omitempty" json:"validators,omitempty"`
}

// Document is a declarative route table. Entry order is preserved: it is
// the registration order, which decides how colliding patterns are tried.
type Document struct {
	Routes []Entry `yaml:"routes" json:"routes" validate:"required,min=1,dive"`
}

// structCheck validates struct tags on parsed documents. Validators are
// safe for concurrent use and cache struct metadata, so a single instance
// is shared.
var structCheck = validator.New()

// Parse decodes a YAML route table and checks its schema.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}

	if err := check(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ParseJSON decodes a JSON route table and checks its schema.
func ParseJSON(data []byte) (*Document, error) {
	var doc Document
	if err := jsoniter.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}

	if err := check(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads a route table from disk, selecting the decoder by file
// extension: .yaml, .yml or .json.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Parse(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("routefile: unsupported file extension %q", filepath.Ext(path))
	}
}

// check verifies the document schema: struct constraints plus that every
// referenced validator name is a known builtin.
func check(doc *Document) error {
	if err := structCheck.Struct(doc); err != nil {
		return fmt.Errorf("routefile: %w", err)
	}

	for _, entry := range doc.Routes {
		for varName, valName := range entry.Validators {
			if _, ok := match.BuiltinValidator(valName); !ok {
				return fmt.Errorf("routefile: route %q: unknown validator %q for variable %q",
					entry.Pattern, valName, varName)
			}
		}
	}

	return nil
}

// Apply registers every entry of the table on the given registry, in table
// order. Pattern problems surface as the registry's own *match.PatternError.
func (d *Document) Apply(r *match.Routes) error {
	for _, entry := range d.Routes {
		vals := make(match.Validators, len(entry.Validators))
		for varName, valName := range entry.Validators {
			v, ok := match.BuiltinValidator(valName)
			if !ok {
				return fmt.Errorf("routefile: route %q: unknown validator %q for variable %q",
					entry.Pattern, valName, varName)
			}
			vals[varName] = v
		}

		if err := r.Add(entry.Pattern, entry.Payload, vals); err != nil {
			return err
		}
	}

	return nil
}
