package numagg

// Kind tags the two shapes a Value can take.
type Kind int

const (
	NumberKind Kind = iota
	AggregateKind
)

func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "Number"
	case AggregateKind:
		return "Aggregate"
	}
	return "<unknown kind>"
}

// Value is the tagged union held under every aggregate key: a Number or a
// nested *Aggregate. The zero Value is the number 0.
type Value struct {
	kind Kind
	num  Number
	agg  *Aggregate
}

func NumberValue(n Number) Value {
	return Value{kind: NumberKind, num: n}
}

// AggregateValue wraps a as a value. Ownership of a transfers to the
// enclosing aggregate; callers that keep using a must pass a.Clone().
func AggregateValue(a *Aggregate) Value {
	return Value{kind: AggregateKind, agg: a}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsAggregate() bool {
	return v.kind == AggregateKind
}

// Number returns the scalar form of v; for a nested aggregate that is its
// recursive total.
func (v Value) Number() Number {
	if v.kind == AggregateKind {
		return v.agg.Total()
	}
	return v.num
}

// Aggregate returns the nested aggregate, or nil for a number value.
func (v Value) Aggregate() *Aggregate {
	return v.agg
}

func (v Value) clone() Value {
	if v.kind == AggregateKind {
		return AggregateValue(v.agg.Clone())
	}
	return v
}

func (v Value) equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == AggregateKind {
		return v.agg.Equal(o.agg)
	}
	return v.num.Equal(o.num)
}

func (v Value) export() any {
	if v.kind == AggregateKind {
		return v.agg.ToMapAny()
	}
	return v.num.Value()
}
