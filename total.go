package numagg

// Total returns the sum of every value, with nested aggregates contributing
// their own recursive total. The total of an empty aggregate is 0.
func (a *Aggregate) Total() Number {
	sum := Int(0)
	for _, k := range a.Keys() {
		sum = addNumbers(sum, a.vals[k].Number())
	}
	return sum
}

func addNumbers(a, b Number) Number {
	n, _ := evalBinary(OpAdd, a, b)
	return n
}

// Compress returns a new aggregate with the same keys where every value is
// collapsed to its numeric form, flattening one level of nesting into
// totals.
func (a *Aggregate) Compress() *Aggregate {
	res := New()
	for k, v := range a.vals {
		res.vals[k] = NumberValue(v.Number())
	}
	return res
}

// CompressInPlace is Compress against the receiver.
func (a *Aggregate) CompressInPlace() {
	for k, v := range a.vals {
		a.vals[k] = NumberValue(v.Number())
	}
}

// Normalize returns a new aggregate with every value scaled by
// magnitude/Total(), preserving nesting. When the total is zero the scale
// factor is defined as 0.0, so every result value is exactly zero.
func (a *Aggregate) Normalize(magnitude float64) *Aggregate {
	total := a.Total().Float64()
	factor := 0.0
	if total != 0 {
		factor = magnitude / total
	}
	res, err := a.Apply(OpMul, Float(factor))
	if err != nil {
		// scalar multiplication has no failure mode
		panic(err)
	}
	return res
}

// NormalizeUnit scales the aggregate so its total is 1.
func (a *Aggregate) NormalizeUnit() *Aggregate {
	return a.Normalize(1.0)
}

// NormalizePercent scales the aggregate so its total is 100.
func (a *Aggregate) NormalizePercent() *Aggregate {
	return a.Normalize(100.0)
}

// Min returns the key/value pair with the smallest value in the compressed
// view. Ties are broken by key order: Min takes the first entry after
// sorting by (value, key). It returns ok=false on an empty aggregate.
func (a *Aggregate) Min() (string, Number, bool) {
	return a.extreme(false)
}

// Max is the counterpart of Min, taking the last entry of the sorted order.
func (a *Aggregate) Max() (string, Number, bool) {
	return a.extreme(true)
}

func (a *Aggregate) extreme(max bool) (string, Number, bool) {
	if len(a.vals) == 0 {
		return "", Number{}, false
	}
	var (
		bestKey string
		bestNum Number
		first   = true
	)
	for _, k := range a.Keys() {
		n := a.vals[k].Number()
		if first {
			bestKey, bestNum, first = k, n, false
			continue
		}
		c := n.Cmp(bestNum)
		if max {
			// later sorted entries win ties
			if c >= 0 {
				bestKey, bestNum = k, n
			}
			continue
		}
		if c < 0 {
			bestKey, bestNum = k, n
		}
	}
	return bestKey, bestNum, true
}
