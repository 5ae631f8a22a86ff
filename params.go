package template

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	v2 "gopkg.in/yaml.v2"
)

// Params is the render context: placeholder name to value.
type Params map[string]any

func copyParams(ps Params) Params {
	nps := make(Params, len(ps))
	for n, v := range ps {
		nps[n] = v
	}

	return nps
}

// Merge returns a copy of p overlaid with o. Keys in o win.
func (p Params) Merge(o Params) Params {
	nps := copyParams(p)
	for n, v := range o {
		nps[n] = v
	}

	return nps
}

// ParseAssignments builds Params from "name=value" pairs. The name is
// trimmed the same way placeholder names are.
func ParseAssignments(pairs []string) (Params, error) {
	ps := make(Params, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.Errorf("assignment must be NAME=VALUE, got %s", pair)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.Errorf("assignment with empty name: %s", pair)
		}
		ps[name] = value
	}

	return ps, nil
}

// LoadParams reads a context file. The decoder is picked by extension:
// .json, .yaml/.yml or .toml.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading params file %s", path)
	}

	ps := Params{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&ps)
	case ".yaml", ".yml":
		err = v2.Unmarshal(data, &ps)
	case ".toml":
		err = toml.Unmarshal(data, &ps)
	default:
		return nil, errors.Errorf("unsupported params file type %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding params file %s", path)
	}

	return ps, nil
}
