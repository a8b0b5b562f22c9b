package assert

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func Equal[T comparable](t *testing.T, actual, expected T) {
	t.Helper()

	if actual != expected {
		t.Errorf("got: %v; want %v", actual, expected)
	}
}

func True(t *testing.T, actual bool, msg string) {
	t.Helper()

	if !actual {
		t.Errorf("expected true: %s", msg)
	}
}

func StringContains(t *testing.T, actual, expectedSubstring string) {
	t.Helper()

	if !strings.Contains(actual, expectedSubstring) {
		t.Errorf("got: %q; expected to contain: %q", actual, expectedSubstring)
	}
}

func NilError(t *testing.T, actual error) {
	t.Helper()

	if actual != nil {
		t.Fatalf("got: %v; expected: nil", actual)
	}
}

func ErrorIs(t *testing.T, actual, target error) {
	t.Helper()

	if !errors.Is(actual, target) {
		t.Errorf("got: %v; expected error wrapping: %v", actual, target)
	}
}

func Len[T any](t *testing.T, actual []T, expected int) {
	t.Helper()

	if len(actual) != expected {
		t.Fatalf("got length %d; want %d", len(actual), expected)
	}
}

func InDelta(t *testing.T, actual, expected, delta float64) {
	t.Helper()

	if math.Abs(actual-expected) > delta {
		t.Errorf("got: %v; want %v (±%v)", actual, expected, delta)
	}
}

func SliceEqual[T comparable](t *testing.T, actual, expected []T) {
	t.Helper()

	if len(actual) != len(expected) {
		t.Errorf("got %v, expected: %v", actual, expected)
		return
	}
	for i := range actual {
		if actual[i] != expected[i] {
			t.Errorf("got %v, expected: %v", actual, expected)
			return
		}
	}
}
