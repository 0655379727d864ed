package numagg

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Aggregate is a mapping from string keys to values, where each value is
// either a Number or another nested Aggregate. Nested aggregates are owned
// by their parent: construction, Set and merge deep-copy aggregate inputs,
// and non-mutating operations always return fresh structures.
type Aggregate struct {
	vals map[string]Value
}

// New returns an empty aggregate.
func New() *Aggregate {
	return &Aggregate{vals: map[string]Value{}}
}

type Config struct {
	Initial any
}

type Option func(*Config)

// WithInitial sets the value bound to constructed keys (default 0). It is
// coerced once, before any key is built.
func WithInitial(v any) Option {
	return func(c *Config) { c.Initial = v }
}

func initialFromOpts(opts []Option) (Number, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Initial == nil {
		return defaultInitial, nil
	}
	return ToNumber(cfg.Initial)
}

// From builds an aggregate from arbitrary contents: nil gives an empty
// aggregate, a flat sequence of keys binds each key to the initial value,
// and a (possibly nested) mapping is constructed recursively. Anything else
// fails with ErrInvalidArgument.
func From(contents any, opts ...Option) (*Aggregate, error) {
	switch x := contents.(type) {
	case nil:
		return New(), nil
	case []string:
		return FromKeys(x, opts...)
	case []any:
		keys, err := keyStrings(x)
		if err != nil {
			return nil, err
		}
		return FromKeys(keys, opts...)
	case map[string]any:
		return FromMap(x, opts...)
	case map[any]any:
		m, err := stringKeyed(x)
		if err != nil {
			return nil, err
		}
		return FromMap(m, opts...)
	case *Aggregate:
		return x.Clone(), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidArgument, contents)
}

// FromKeys binds every key to the initial value.
func FromKeys(keys []string, opts ...Option) (*Aggregate, error) {
	initial, err := initialFromOpts(opts)
	if err != nil {
		return nil, err
	}
	res := New()
	for _, k := range keys {
		res.vals[k] = NumberValue(initial)
	}
	return res, nil
}

// FromMap builds an aggregate from a possibly nested mapping. Values that
// are themselves mappings or sequences become nested aggregates built with
// the same initial value; everything else is coerced to a Number.
func FromMap(m map[string]any, opts ...Option) (*Aggregate, error) {
	initial, err := initialFromOpts(opts)
	if err != nil {
		return nil, err
	}
	return fromMap(m, initial)
}

func fromMap(m map[string]any, initial Number) (*Aggregate, error) {
	res := New()
	for k, v := range m {
		val, err := buildValue(v, initial)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		res.vals[k] = val
	}
	return res, nil
}

// buildValue applies construction semantics to a raw value: mappings and
// sequences recurse, aggregates are deep-copied, scalars coerce.
func buildValue(v any, initial Number) (Value, error) {
	switch x := v.(type) {
	case map[string]any:
		sub, err := fromMap(x, initial)
		if err != nil {
			return Value{}, err
		}
		return AggregateValue(sub), nil
	case map[any]any:
		m, err := stringKeyed(x)
		if err != nil {
			return Value{}, err
		}
		sub, err := fromMap(m, initial)
		if err != nil {
			return Value{}, err
		}
		return AggregateValue(sub), nil
	case []string:
		sub := New()
		for _, k := range x {
			sub.vals[k] = NumberValue(initial)
		}
		return AggregateValue(sub), nil
	case []any:
		keys, err := keyStrings(x)
		if err != nil {
			return Value{}, err
		}
		sub := New()
		for _, k := range keys {
			sub.vals[k] = NumberValue(initial)
		}
		return AggregateValue(sub), nil
	case *Aggregate:
		return AggregateValue(x.Clone()), nil
	case Value:
		return x.clone(), nil
	}
	n, err := ToNumber(v)
	if err != nil {
		return Value{}, err
	}
	return NumberValue(n), nil
}

func keyStrings(keys []any) ([]string, error) {
	res := make([]string, len(keys))
	for i, k := range keys {
		s, err := keyString(k)
		if err != nil {
			return nil, err
		}
		res[i] = s
	}
	return res, nil
}

func keyString(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", fmt.Errorf("%w: key %T (%v)", ErrInvalidArgument, k, k)
}

func stringKeyed(m map[any]any) (map[string]any, error) {
	res := make(map[string]any, len(m))
	for k, v := range m {
		s, err := keyString(k)
		if err != nil {
			return nil, err
		}
		res[s] = v
	}
	return res, nil
}

// ApplyKeys binds every key to the initial value on an owned, possibly
// non-empty aggregate, overwriting matching keys. The initial value is
// validated before any key is written.
func (a *Aggregate) ApplyKeys(keys []string, initial any) error {
	n, err := ToNumber(initial)
	if err != nil {
		return err
	}
	for _, k := range keys {
		a.vals[k] = NumberValue(n)
	}
	return nil
}

// ApplyMap applies FromMap construction semantics against an owned
// aggregate, overwriting matching keys. The whole mapping is built before
// any mutation, so a failed apply leaves the receiver untouched.
func (a *Aggregate) ApplyMap(m map[string]any, initial any) error {
	built, err := FromMap(m, WithInitial(initial))
	if err != nil {
		return err
	}
	for k, v := range built.vals {
		a.vals[k] = v
	}
	return nil
}

func (a *Aggregate) Len() int {
	return len(a.vals)
}

// Keys returns the key set in sorted order.
func (a *Aggregate) Keys() []string {
	keys := make([]string, 0, len(a.vals))
	for k := range a.vals {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (a *Aggregate) Get(key string) (Value, bool) {
	v, ok := a.vals[key]
	return v, ok
}

// At returns the value at key, or the default number 0 when absent.
func (a *Aggregate) At(key string) Value {
	v, ok := a.vals[key]
	if !ok {
		return NumberValue(defaultInitial)
	}
	return v
}

// Set stores a value under key, applying construction semantics: mappings
// and sequences become nested aggregates, aggregates are deep-copied and
// scalars are coerced.
func (a *Aggregate) Set(key string, v any) error {
	val, err := buildValue(v, defaultInitial)
	if err != nil {
		return err
	}
	a.vals[key] = val
	return nil
}

func (a *Aggregate) Delete(key string) {
	delete(a.vals, key)
}

// Clone returns a deep, independent copy.
func (a *Aggregate) Clone() *Aggregate {
	res := &Aggregate{vals: make(map[string]Value, len(a.vals))}
	for k, v := range a.vals {
		res.vals[k] = v.clone()
	}
	return res
}

// Equal reports deep equality, distinguishing integer and float values.
func (a *Aggregate) Equal(o *Aggregate) bool {
	if len(a.vals) != len(o.vals) {
		return false
	}
	for k, v := range a.vals {
		ov, ok := o.vals[k]
		if !ok || !v.equal(ov) {
			return false
		}
	}
	return true
}

// ToMapAny exports the aggregate as a plain nested map with int64/float64
// leaves.
func (a *Aggregate) ToMapAny() map[string]any {
	res := make(map[string]any, len(a.vals))
	for k, v := range a.vals {
		res[k] = v.export()
	}
	return res
}

func (a *Aggregate) String() string {
	var b strings.Builder
	a.writeString(&b)
	return b.String()
}

func (a *Aggregate) writeString(b *strings.Builder) {
	b.WriteByte('{')
	for i, k := range a.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		v := a.vals[k]
		if v.IsAggregate() {
			v.Aggregate().writeString(b)
		} else {
			b.WriteString(v.Number().String())
		}
	}
	b.WriteByte('}')
}
