package numagg

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// FromYAML builds an aggregate from a YAML mapping document, applying
// FromMap construction semantics to the decoded tree.
func FromYAML(data []byte, opts ...Option) (*Aggregate, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return FromMap(m, opts...)
}

// FromJSON builds an aggregate from a JSON object. JSON is a subset of
// YAML, so it goes through the same decoder, which keeps integer leaves
// integral.
func FromJSON(data []byte, opts ...Option) (*Aggregate, error) {
	return FromYAML(data, opts...)
}

// ToYAML renders the aggregate as a YAML mapping with sorted keys.
func (a *Aggregate) ToYAML() ([]byte, error) {
	return yaml.Marshal(a.ordered())
}

func (a *Aggregate) ordered() yaml.MapSlice {
	res := make(yaml.MapSlice, 0, len(a.vals))
	for _, k := range a.Keys() {
		v := a.vals[k]
		var item any
		if v.IsAggregate() {
			item = v.Aggregate().ordered()
		} else {
			item = v.Number().Value()
		}
		res = append(res, yaml.MapItem{Key: k, Value: item})
	}
	return res
}

// ToJSON renders the aggregate as a JSON object with sorted keys.
func (a *Aggregate) ToJSON() ([]byte, error) {
	return json.Marshal(a.ToMapAny())
}

// MergePatchJSON applies an RFC 7386 JSON merge patch to the aggregate and
// rebuilds the result, so null entries remove keys and remaining values go
// through the usual construction sanitization.
func (a *Aggregate) MergePatchJSON(patch []byte) (*Aggregate, error) {
	doc, err := a.ToJSON()
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return FromJSON(merged)
}
