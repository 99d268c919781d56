package params

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// document is a loaded parameter file, addressable by a parameter's
// dot-separated primary name. Values come back in textual form; typed
// decoding happens at read time, not at load time.
type document interface {
	lookup(name string) (string, bool)
}

// mergeFile loads the parameter file and stores its values into every
// parameter the command line left unset. File-sourced values satisfy reads
// but do not mark the cell as set, so explicit command-line values stay
// distinguishable. A non-empty path naming a missing file is ErrIniFile.
func (p *Params) mergeFile(path string) error {
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return fmt.Errorf("%w: first positional argument should name a valid parameter file: %s",
			ErrIniFile, path)
	}
	doc, err := loadDocument(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIniFile, path, err)
	}
	for _, e := range p.entries {
		if e.cell.set {
			continue
		}
		if text, ok := doc.lookup(e.name); ok {
			value := text
			e.cell.raw = &value
			e.cell.diag = ""
		}
	}
	return nil
}

// loadDocument reads the file once and parses it by extension: .toml and
// .yaml/.yml get the corresponding parsers, everything else is INI. The file
// handle lives only inside os.ReadFile.
func loadDocument(path string) (document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		nested := make(map[string]any)
		if err := toml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
		return mapDocument{flat: flattenMap(nested, "")}, nil

	case ".yaml", ".yml":
		nested := make(map[string]any)
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		return mapDocument{flat: flattenMap(nested, "")}, nil

	default:
		file, err := ini.Load(data)
		if err != nil {
			return nil, fmt.Errorf("parsing INI: %w", err)
		}
		return iniDocument{file: file}, nil
	}
}

// iniDocument resolves a dotted parameter name as section plus key: the last
// segment is the key, everything before it the section, and an undotted name
// lives in the default section.
type iniDocument struct {
	file *ini.File
}

func (d iniDocument) lookup(name string) (string, bool) {
	section, key := "", name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		section, key = name[:i], name[i+1:]
	}
	s, err := d.file.GetSection(section)
	if err != nil || !s.HasKey(key) {
		return "", false
	}
	return s.Key(key).String(), true
}

// mapDocument serves TOML and YAML files flattened to dotted paths.
type mapDocument struct {
	flat map[string]any
}

func (d mapDocument) lookup(name string) (string, bool) {
	v, ok := d.flat[name]
	if !ok {
		return "", false
	}
	return textOf(v)
}

// textOf renders a decoded file value in the registry's canonical textual
// form. Lists join on "," to match the sequence delimiter; nested tables are
// not values.
func textOf(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			text, ok := textOf(e)
			if !ok {
				return "", false
			}
			parts[i] = text
		}
		return strings.Join(parts, ","), true
	case map[string]any:
		return "", false
	case nil:
		return "", false
	default:
		return fmt.Sprint(val), true
	}
}
