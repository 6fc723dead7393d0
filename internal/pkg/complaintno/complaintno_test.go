package complaintno

import (
	"errors"
	"strconv"
	"testing"
)

func TestRandom_ShapeAndRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 500; i++ {
		no, err := Random()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(no) != Length {
			t.Fatalf("expected length %d, got %q", Length, no)
		}
		n, err := strconv.Atoi(no)
		if err != nil {
			t.Fatalf("complaint number %q is not numeric", no)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("complaint number %d out of range", n)
		}
	}
}

func TestGenerate_SkipsTakenNumbers(t *testing.T) {
	t.Parallel()

	taken := make(map[string]bool)
	calls := 0
	exists := func(no string) (bool, error) {
		calls++
		// Pretend the first two draws are already persisted.
		if calls <= 2 {
			taken[no] = true
			return true, nil
		}
		return taken[no], nil
	}

	no, err := Generate(exists)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken[no] {
		t.Fatalf("Generate returned a taken number %q", no)
	}
	if calls < 3 {
		t.Fatalf("expected at least 3 existence checks, got %d", calls)
	}
}

func TestGenerate_ExhaustionIsFatal(t *testing.T) {
	t.Parallel()

	everythingTaken := func(string) (bool, error) { return true, nil }

	if _, err := Generate(everythingTaken); err == nil {
		t.Fatalf("expected error when number space is exhausted")
	}
}

func TestGenerate_PropagatesLookupError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	if _, err := Generate(func(string) (bool, error) { return false, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected lookup error to propagate, got %v", err)
	}
}
