package binfloat

import (
	"strings"
	"testing"
)

func TestDebugSpecialValues(t *testing.T) {
	cases := map[string]*Float{
		"NaN":  NaN(8),
		"+0.0": Zero(8),
		"-0.0": NegZero(8),
		"+inf": Infinity(8),
		"-inf": NegInfinity(8),
	}
	for want, f := range cases {
		if got := f.Debug(); got != want {
			t.Errorf("Debug() = %q, want %q", got, want)
		}
	}
}

func TestDebugNormal(t *testing.T) {
	f := FromInt64(5).WithPrecision(8)
	got := f.Debug()
	if !strings.Contains(got, "101") || !strings.HasPrefix(got, "+") {
		t.Errorf("Debug() = %q, want it to contain the binary significand 101", got)
	}
}

func TestStringMatchesDebug(t *testing.T) {
	f := FromInt64(-3).WithPrecision(8)
	if f.String() != f.Debug() {
		t.Errorf("String() = %q, Debug() = %q, want equal", f.String(), f.Debug())
	}
}

func TestGoString(t *testing.T) {
	f := Zero(8)
	got := f.GoString()
	if !strings.Contains(got, "binfloat.Float{") {
		t.Errorf("GoString() = %q, want it to look like a struct literal", got)
	}
}
