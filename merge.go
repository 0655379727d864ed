package numagg

import (
	"fmt"
	"strings"

	"github.com/treemath/numagg/debug"
)

type MergeConfig struct {
	MatchStructure bool
}

type MergeOption func(*MergeConfig)

// MatchStructure makes DeepMerge verify, before touching anything, that the
// incoming key/shape tree is a subset of the target's.
func MatchStructure(v bool) MergeOption {
	return func(c *MergeConfig) { c.MatchStructure = v }
}

// DeepMerge merges other into a copy of the aggregate. For every key in
// other: a nested aggregate merging into a nested aggregate recurses,
// anything else replaces the slot with a sanitized form of other's value
// (mapping becomes a nested aggregate, everything else coerces to a
// Number). Keys only in the receiver are preserved.
//
// other may be another *Aggregate or a raw (possibly nested) map. With
// MatchStructure(true), a key or shape in other that the receiver lacks
// fails with ErrStructureMismatch before any merging happens.
func (a *Aggregate) DeepMerge(other any, opts ...MergeOption) (*Aggregate, error) {
	o, cfg, err := a.mergeOperand(other, opts)
	if err != nil {
		return nil, err
	}
	if cfg.MatchStructure {
		if err := a.checkStructure(o, nil); err != nil {
			return nil, err
		}
	}
	res := a.Clone()
	res.mergeFrom(o)
	return res, nil
}

// MergeInPlace is DeepMerge against the receiver. Sanitization and the
// optional structure check run before any mutation, so a failed merge
// leaves the receiver untouched.
func (a *Aggregate) MergeInPlace(other any, opts ...MergeOption) error {
	o, cfg, err := a.mergeOperand(other, opts)
	if err != nil {
		return err
	}
	if cfg.MatchStructure {
		if err := a.checkStructure(o, nil); err != nil {
			return err
		}
	}
	a.mergeFrom(o)
	return nil
}

func (a *Aggregate) mergeOperand(other any, opts []MergeOption) (*Aggregate, *MergeConfig, error) {
	cfg := &MergeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	switch x := other.(type) {
	case *Aggregate:
		return x, cfg, nil
	case map[string]any:
		o, err := sanitizeMap(x)
		if err != nil {
			return nil, nil, err
		}
		return o, cfg, nil
	case map[any]any:
		m, err := stringKeyed(x)
		if err != nil {
			return nil, nil, err
		}
		o, err := sanitizeMap(m)
		if err != nil {
			return nil, nil, err
		}
		return o, cfg, nil
	}
	return nil, nil, fmt.Errorf("%w: merge operand %T", ErrInvalidArgument, other)
}

// sanitizeMap applies merge semantics to a raw mapping: nested mappings
// become aggregates, everything else must coerce to a Number. Unlike
// construction, sequences do not build key sets here.
func sanitizeMap(m map[string]any) (*Aggregate, error) {
	res := New()
	for k, v := range m {
		switch x := v.(type) {
		case map[string]any:
			sub, err := sanitizeMap(x)
			if err != nil {
				return nil, err
			}
			res.vals[k] = AggregateValue(sub)
			continue
		case map[any]any:
			sm, err := stringKeyed(x)
			if err != nil {
				return nil, err
			}
			sub, err := sanitizeMap(sm)
			if err != nil {
				return nil, err
			}
			res.vals[k] = AggregateValue(sub)
			continue
		case *Aggregate:
			res.vals[k] = AggregateValue(x.Clone())
			continue
		case Value:
			res.vals[k] = x.clone()
			continue
		}
		n, err := ToNumber(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		res.vals[k] = NumberValue(n)
	}
	return res, nil
}

func (a *Aggregate) mergeFrom(o *Aggregate) {
	if debug.Merge() {
		debug.Logf("merge %s into %s\n", o, a)
	}
	for k, ov := range o.vals {
		cur, ok := a.vals[k]
		if ok && cur.IsAggregate() && ov.IsAggregate() {
			cur.Aggregate().mergeFrom(ov.Aggregate())
			continue
		}
		a.vals[k] = ov.clone()
	}
}

func (a *Aggregate) checkStructure(o *Aggregate, path []string) error {
	for _, k := range o.Keys() {
		ov := o.vals[k]
		p := append(path, k)
		cur, ok := a.vals[k]
		if !ok {
			return fmt.Errorf("%w: key %q not present in target", ErrStructureMismatch, joinPath(p))
		}
		if ov.IsAggregate() {
			if !cur.IsAggregate() {
				return fmt.Errorf("%w: %q is nested in incoming data but scalar in target", ErrStructureMismatch, joinPath(p))
			}
			if err := cur.Aggregate().checkStructure(ov.Aggregate(), p); err != nil {
				return err
			}
			continue
		}
		if cur.IsAggregate() {
			return fmt.Errorf("%w: %q is scalar in incoming data but nested in target", ErrStructureMismatch, joinPath(p))
		}
	}
	return nil
}

func joinPath(path []string) string {
	return strings.Join(path, ".")
}
