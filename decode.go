package params

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the registry's concrete values into target, a pointer to a
// struct or map. Parameters are addressed by their primary names as
// dot-separated paths; prefix selects a subtree ("" for the whole registry).
// Parameters without any value are skipped, so optional structure fields
// keep their zero values. Field names are matched through `params` struct
// tags.
func (p *Params) Scan(prefix string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	if err := p.ready(); err != nil {
		return err
	}

	nested := make(map[string]any)
	for _, e := range p.entries {
		v, ok, err := e.concrete()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		setNestedValue(nested, e.name, v)
	}

	section := navigateToPath(nested, prefix)
	sectionMap, ok := section.(map[string]any)
	if !ok {
		if section == nil {
			sectionMap = make(map[string]any)
		} else {
			return fmt.Errorf("path %q refers to non-map value (type %T)", prefix, section)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "params",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("decode failed for path %q: %w", prefix, err)
	}
	return nil
}
