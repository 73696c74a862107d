// SPDX-License-Identifier: MPL-2.0

package enumrange_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hostkit/hostkit/pkg/assert"
	"github.com/hostkit/hostkit/pkg/enumrange"
)

// pair is the minimal conforming enumeration: {First=0, A=0, B=1, Count=2}.
type pair int

const (
	pairA pair = iota
	pairB
	pairCount

	pairFirst = pairA
)

func (pair) Bounds() (first, count pair) { return pairFirst, pairCount }

func (p pair) String() string {
	switch p {
	case pairA:
		return "A"
	case pairB:
		return "B"
	default:
		return "?"
	}
}

// level starts above zero and uses a narrow storage type.
type level uint8

const (
	levelTrace level = iota + 3
	levelDebug
	levelInfo
	levelWarn
	levelCount

	levelFirst = levelTrace
)

func (level) Bounds() (first, count level) { return levelFirst, levelCount }

func (l level) String() string {
	return [...]string{"trace", "debug", "info", "warn"}[l-levelFirst]
}

func TestBoundaries(t *testing.T) {
	t.Parallel()

	if got := enumrange.First[level](); got != levelTrace {
		t.Errorf("First[level]() = %d, want %d", got, levelTrace)
	}
	if got := enumrange.Count[level](); got != levelCount {
		t.Errorf("Count[level]() = %d, want %d", got, levelCount)
	}
	if got := enumrange.Len[level](); got != 4 {
		t.Errorf("Len[level]() = %d, want 4", got)
	}
	if got := enumrange.Len[pair](); got != 2 {
		t.Errorf("Len[pair]() = %d, want 2", got)
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value level
		want  bool
	}{
		{"first", levelTrace, true},
		{"middle", levelInfo, true},
		{"last", levelWarn, true},
		{"count is out of range", levelCount, false},
		{"below first", levelTrace - 1, false},
		{"zero", 0, false},
		{"max storage value", 255, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := enumrange.IsValid(tt.value); got != tt.want {
				t.Errorf("IsValid(%d) = %v, want %v", tt.value, got, tt.want)
			}
			err := enumrange.Validate(tt.value)
			if (err == nil) != tt.want {
				t.Errorf("Validate(%d) error = %v, want valid=%v", tt.value, err, tt.want)
			}
		})
	}
}

func TestIncDecForms(t *testing.T) {
	t.Parallel()

	v := pairA
	if got := enumrange.Inc(&v); got != pairB || v != pairB {
		t.Errorf("Inc: returned %d, v = %d, want %d and %d", got, v, pairB, pairB)
	}
	if got := enumrange.Dec(&v); got != pairA || v != pairA {
		t.Errorf("Dec: returned %d, v = %d, want %d and %d", got, v, pairA, pairA)
	}
	if got := enumrange.PostInc(&v); got != pairA || v != pairB {
		t.Errorf("PostInc: returned %d, v = %d, want %d and %d", got, v, pairA, pairB)
	}
	if got := enumrange.PostDec(&v); got != pairB || v != pairA {
		t.Errorf("PostDec: returned %d, v = %d, want %d and %d", got, v, pairB, pairA)
	}
}

func TestIncDoesNotClamp(t *testing.T) {
	t.Parallel()

	v := pairB
	enumrange.Inc(&v)
	if v != pairCount {
		t.Fatalf("Inc(B) = %d, want Count (%d)", v, pairCount)
	}
	enumrange.Inc(&v)
	if v != pairCount+1 || enumrange.IsValid(v) {
		t.Errorf("Inc past Count = %d (valid=%v), want %d and invalid", v, enumrange.IsValid(v), pairCount+1)
	}

	w := pairA
	enumrange.Dec(&w)
	if w != pairA-1 || enumrange.IsValid(w) {
		t.Errorf("Dec below First = %d (valid=%v), want %d and invalid", w, enumrange.IsValid(w), pairA-1)
	}
}

func TestIncDecRoundTrip(t *testing.T) {
	t.Parallel()

	for v := range enumrange.All[level]() {
		if v != levelWarn {
			w := v
			enumrange.Inc(&w)
			enumrange.Dec(&w)
			if w != v {
				t.Errorf("Inc then Dec of %v = %d, want %d", v, w, v)
			}
		}
		if v != levelTrace {
			w := v
			enumrange.Dec(&w)
			enumrange.Inc(&w)
			if w != v {
				t.Errorf("Dec then Inc of %v = %d, want %d", v, w, v)
			}
		}
	}
}

func TestSentinelComparisons(t *testing.T) {
	t.Parallel()

	for raw := 0; raw <= 255; raw++ {
		v := level(raw)
		less := enumrange.Less(v, enumrange.End)
		eq := enumrange.Equal(v, enumrange.End)
		ne := enumrange.NotEqual(v, enumrange.End)

		if less != (raw < int(levelCount)) {
			t.Errorf("Less(%d, End) = %v", raw, less)
		}
		if eq != (raw == int(levelCount)) {
			t.Errorf("Equal(%d, End) = %v", raw, eq)
		}
		if eq == ne {
			t.Errorf("Equal and NotEqual agree for %d: %v", raw, eq)
		}
	}
}

func TestSentinelLoopVisitsEachMemberOnce(t *testing.T) {
	t.Parallel()

	var visited []level
	iterations := 0
	for v := enumrange.First[level](); enumrange.NotEqual(v, enumrange.End); enumrange.Inc(&v) {
		visited = append(visited, v)
		iterations++
	}

	want := []level{levelTrace, levelDebug, levelInfo, levelWarn}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("sentinel loop order mismatch (-want +got):\n%s", diff)
	}
	if iterations != int(levelCount-levelFirst) {
		t.Errorf("iterations = %d, want Count-First = %d", iterations, levelCount-levelFirst)
	}
}

func TestPairExample(t *testing.T) {
	t.Parallel()

	if !enumrange.IsValid(pairA) {
		t.Error("IsValid(A) should be true")
	}
	if enumrange.IsValid(pairCount) {
		t.Error("IsValid(Count) should be false")
	}
	if !enumrange.NotEqual(pairA, enumrange.End) {
		t.Error("A != End should hold")
	}

	v := pairA
	if enumrange.Inc(&v); v != pairB {
		t.Errorf("Inc(A) = %d, want B", v)
	}
	if enumrange.Equal(v, enumrange.End) {
		t.Error("B == End should not hold: B is the last valid member")
	}
	if enumrange.Inc(&v); !enumrange.Equal(v, enumrange.End) {
		t.Error("value after B should equal End")
	}
}

func TestAllAndValues(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]pair{pairA, pairB}, enumrange.Values[pair]()); diff != "" {
		t.Errorf("Values[pair]() mismatch (-want +got):\n%s", diff)
	}

	var first []level
	for v := range enumrange.All[level]() {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]level{levelTrace, levelDebug}, first); diff != "" {
		t.Errorf("early break mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplayAndParse(t *testing.T) {
	t.Parallel()

	if got := enumrange.Display(levelInfo); got != "info" {
		t.Errorf("Display(levelInfo) = %q, want %q", got, "info")
	}
	if got := enumrange.Display(levelCount); got != "level(7)" {
		t.Errorf("Display(levelCount) = %q, want %q", got, "level(7)")
	}

	got, err := enumrange.Parse[level]("warn")
	if err != nil || got != levelWarn {
		t.Errorf("Parse(warn) = %d, %v; want %d, nil", got, err, levelWarn)
	}

	_, err = enumrange.Parse[level]("fatal")
	if !errors.Is(err, enumrange.ErrUnknownValue) {
		t.Fatalf("Parse(fatal) error = %v, want ErrUnknownValue", err)
	}
	var uvErr *enumrange.UnknownValueError
	if !errors.As(err, &uvErr) {
		t.Fatalf("Parse(fatal) error should be *UnknownValueError, got %T", err)
	}
	if diff := cmp.Diff([]string{"trace", "debug", "info", "warn"}, uvErr.Known); diff != "" {
		t.Errorf("Known mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_ErrorDetails(t *testing.T) {
	t.Parallel()

	err := enumrange.Validate(levelCount)
	if !errors.Is(err, enumrange.ErrOutOfRange) {
		t.Fatalf("Validate(levelCount) = %v, want ErrOutOfRange", err)
	}
	var oorErr *enumrange.OutOfRangeError
	if !errors.As(err, &oorErr) {
		t.Fatalf("error should be *OutOfRangeError, got %T", err)
	}
	if oorErr.Type != "level" || oorErr.Value != 7 || oorErr.First != 3 || oorErr.Count != 7 {
		t.Errorf("unexpected error fields: %+v", oorErr)
	}
	if want := "level value 7 out of range [3, 7)"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestAssertValid swaps the process-wide assertion handler; not parallel.
func TestAssertValid(t *testing.T) {
	var failures []*assert.Failure
	restore := assert.SetHandler(func(f *assert.Failure) { failures = append(failures, f) })
	defer restore()

	enumrange.AssertValid(levelDebug)
	if len(failures) != 0 {
		t.Fatalf("AssertValid on a valid value reported %d failures", len(failures))
	}

	enumrange.AssertValid(levelCount)
	if len(failures) != 1 {
		t.Fatalf("AssertValid(levelCount) reported %d failures, want 1", len(failures))
	}
	f := failures[0]
	if !strings.Contains(f.Description, "level value 7 out of range [3, 7)") {
		t.Errorf("Description = %q", f.Description)
	}
	if !strings.Contains(f.Func, "TestAssertValid") {
		t.Errorf("failure should point at the AssertValid caller, got %q", f.Func)
	}
}

func TestEndString(t *testing.T) {
	t.Parallel()

	if got := enumrange.End.String(); got != "End" {
		t.Errorf("End.String() = %q, want End", got)
	}
}
