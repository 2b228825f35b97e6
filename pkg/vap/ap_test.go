package vap

import (
	"reflect"
	"strconv"
	"testing"
)

func TestAp_BothValid(t *testing.T) {
	t.Parallel()
	double := Valid[string](func(n int) int { return n * 2 })

	got := Ap(Valid[string](21), double)
	if !got.IsValid() || got.Get() != 42 {
		t.Fatalf("expected valid 42, got: %v", got)
	}
}

func TestAp_ChangesValueType(t *testing.T) {
	t.Parallel()
	itoa := Valid[string](func(n int) string { return strconv.Itoa(n) })

	got := Ap(Valid[string](7), itoa)
	if !got.IsValid() || got.Get() != "7" {
		t.Fatalf("expected valid \"7\", got: %v", got)
	}
}

func TestAp_SelfInvalidWins(t *testing.T) {
	t.Parallel()
	itoa := Valid[string](func(n int) string { return strconv.Itoa(n) })

	got := Ap(Invalid[string, int]("bad value"), itoa)
	if want := []string{"bad value"}; !reflect.DeepEqual(got.GetErrors(), want) {
		t.Fatalf("expected %v, got: %v", want, got.GetErrors())
	}
}

func TestAp_FunctionInvalidWins(t *testing.T) {
	t.Parallel()
	broken := Invalid[string, func(int) int]("bad function")

	got := Ap(Valid[string](7), broken)
	if want := []string{"bad function"}; !reflect.DeepEqual(got.GetErrors(), want) {
		t.Fatalf("expected %v, got: %v", want, got.GetErrors())
	}
}

func TestAp_BothInvalidMergesFunctionErrorsFirst(t *testing.T) {
	t.Parallel()
	v := InvalidAll[string, int]("value a", "value b")
	broken := Invalid[string, func(int) int]("function")

	got := Ap(v, broken)
	if want := []string{"function", "value a", "value b"}; !reflect.DeepEqual(got.GetErrors(), want) {
		t.Fatalf("expected function errors first %v, got: %v", want, got.GetErrors())
	}
}

func TestAp_IdentityLaw(t *testing.T) {
	t.Parallel()
	id := Valid[string](func(n int) int { return n })

	for _, n := range []int{-3, 0, 7, 1 << 20} {
		if got := Ap(Valid[string](n), id); !got.Equal(Valid[string](n)) {
			t.Fatalf("expected identity to preserve Valid(%v), got: %v", n, got)
		}
	}
}

func TestAp_HomomorphismLaw(t *testing.T) {
	t.Parallel()
	square := func(n int) int { return n * n }

	for _, n := range []int{-2, 0, 5, 11} {
		got := Ap(Valid[string](n), Valid[string](square))
		if want := Valid[string](square(n)); !got.Equal(want) {
			t.Fatalf("expected %v, got: %v", want, got)
		}
	}
}
