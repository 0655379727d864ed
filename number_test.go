package numagg

import (
	"math"
	"testing"
)

func TestNumberString(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{Int(0), "0"},
		{Int(-7), "-7"},
		{Float(2.5), "2.5"},
		{Float(12), "12.0"},
		{Float(-3), "-3.0"},
		{Float(math.Inf(1)), "+Inf"},
	}
	for _, tt := range tests {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNumberCmp(t *testing.T) {
	tests := []struct {
		a, b Number
		want int
	}{
		{Int(1), Int(2), -1},
		{Int(2), Int(2), 0},
		{Int(3), Int(2), 1},
		{Int(1), Float(1.5), -1},
		{Float(2), Int(2), 0},
		{Float(2.5), Float(-1), 1},
	}
	for _, tt := range tests {
		if got := tt.a.Cmp(tt.b); got != tt.want {
			t.Errorf("%s.Cmp(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNumberEqualIsStrict(t *testing.T) {
	if Int(1).Equal(Float(1)) {
		t.Error("Int(1) should not equal Float(1)")
	}
	if !Int(1).Equal(Int(1)) {
		t.Error("Int(1) should equal Int(1)")
	}
}

func TestEvalBinary(t *testing.T) {
	tests := []struct {
		op   Op
		a, b Number
		want Number
	}{
		{OpAdd, Int(1), Int(2), Int(3)},
		{OpAdd, Float(1), Int(2), Float(3)},
		{OpSub, Int(5), Int(7), Int(-2)},
		{OpMul, Int(3), Float(0.5), Float(1.5)},
		{OpDiv, Int(7), Int(2), Int(3)},
		{OpDiv, Int(-7), Int(2), Int(-3)},
		{OpDiv, Float(7), Int(2), Float(3.5)},
		{OpMod, Int(7), Int(3), Int(1)},
		{OpMod, Int(-7), Int(3), Int(-1)},
		{OpRem, Int(-7), Int(3), Int(-1)},
		{OpModulo, Int(-7), Int(3), Int(2)},
		{OpModulo, Int(7), Int(-3), Int(-2)},
		{OpModulo, Float(-7), Int(3), Float(2)},
		{OpIntDiv, Int(7), Int(2), Int(3)},
		{OpIntDiv, Int(-7), Int(2), Int(-4)},
		{OpIntDiv, Float(-7), Int(2), Int(-4)},
		{OpQuo, Int(7), Int(2), Float(3.5)},
		{OpFDiv, Int(1), Int(4), Float(0.25)},
		{OpPow, Int(2), Int(10), Int(1024)},
		{OpPow, Int(2), Int(-1), Float(0.5)},
		{OpPow, Float(4), Float(0.5), Float(2)},
		{OpAnd, Int(6), Int(3), Int(2)},
		{OpOr, Int(6), Int(3), Int(7)},
		{OpXor, Int(6), Int(3), Int(5)},
	}
	for _, tt := range tests {
		got, err := evalBinary(tt.op, tt.a, tt.b)
		if err != nil {
			t.Errorf("evalBinary(%s, %s, %s): %v", tt.op, tt.a, tt.b, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("evalBinary(%s, %s, %s) = %s, want %s", tt.op, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEvalBinaryBitwiseOnFloat(t *testing.T) {
	for _, op := range []Op{OpAnd, OpOr, OpXor} {
		if _, err := evalBinary(op, Float(1.5), Int(1)); err == nil {
			t.Errorf("evalBinary(%s, 1.5, 1): expected error", op)
		}
	}
}

func TestEvalBinaryFloatDivByZero(t *testing.T) {
	got, err := evalBinary(OpDiv, Float(1), Int(0))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(got.Float64(), 1) {
		t.Errorf("1.0/0 = %s, want +Inf", got)
	}
}

func TestEvalBinaryIntDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on integer division by zero")
		}
	}()
	evalBinary(OpDiv, Int(1), Int(0))
}

func TestEvalUnary(t *testing.T) {
	tests := []struct {
		op   Op
		n    Number
		want Number
	}{
		{OpPos, Int(3), Int(3)},
		{OpNeg, Int(3), Int(-3)},
		{OpNeg, Float(-2.5), Float(2.5)},
		{OpBitNot, Int(0), Int(-1)},
		{OpAbs, Int(-4), Int(4)},
		{OpAbs, Float(-1.5), Float(1.5)},
		{OpCeil, Float(1.2), Float(2)},
		{OpCeil, Int(7), Int(7)},
		{OpFloor, Float(-1.2), Float(-2)},
		{OpRound, Float(2.5), Float(3)},
		{OpRound, Float(-2.5), Float(-3)},
		{OpTrunc, Float(-2.9), Float(-2)},
	}
	for _, tt := range tests {
		got, err := evalUnary(tt.op, tt.n)
		if err != nil {
			t.Errorf("evalUnary(%s, %s): %v", tt.op, tt.n, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("evalUnary(%s, %s) = %s, want %s", tt.op, tt.n, got, tt.want)
		}
	}
}

func TestEvalUnaryBitNotOnFloat(t *testing.T) {
	if _, err := evalUnary(OpBitNot, Float(1.5)); err == nil {
		t.Error("expected error for ~1.5")
	}
}
