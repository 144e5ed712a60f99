package cast

import (
	"errors"
	"math"
	"testing"

	"go.dw1.io/safemath"
)

func TestToIntegerInputs(t *testing.T) {
	t.Run("withinRange", func(t *testing.T) {
		got, err := To[uint](int64(4))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 4 {
			t.Fatalf("expected 4, got %d", got)
		}
	})

	t.Run("negative", func(t *testing.T) {
		if _, err := To[uint](-1); err == nil {
			t.Fatalf("expected error for negative count")
		}
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := To[int8](int64(math.MaxInt8) + 1)
		if !errors.Is(err, safemath.ErrTruncation) {
			t.Fatalf("expected safemath.ErrTruncation, got %v", err)
		}
	})
}

func TestToFloatInputs(t *testing.T) {
	t.Run("whole", func(t *testing.T) {
		got, err := To[uint](float64(12))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 12 {
			t.Fatalf("expected 12, got %d", got)
		}
	})

	t.Run("fraction", func(t *testing.T) {
		_, err := To[uint](2.5)
		if !errors.Is(err, ErrFraction) {
			t.Fatalf("expected ErrFraction, got %v", err)
		}
	})

	t.Run("nan", func(t *testing.T) {
		if _, err := To[uint](math.NaN()); !errors.Is(err, ErrFraction) {
			t.Fatalf("expected ErrFraction, got %v", err)
		}
	})

	t.Run("negative", func(t *testing.T) {
		if _, err := To[uint](float64(-3)); err == nil {
			t.Fatalf("expected error for negative float")
		}
	})
}

func TestToStringInputs(t *testing.T) {
	got, err := To[uint]("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	if _, err := To[uint]("four"); err == nil {
		t.Fatalf("expected error for non-numeric string")
	}
}
