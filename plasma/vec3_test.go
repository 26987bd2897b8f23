package plasma

import (
	"errors"
	"math"
	"testing"
)

func TestVec3_DotSubNorm(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0, Z: 2}

	if got := a.Dot(b); got != 5 {
		t.Fatalf("Dot = %v, want 5", got)
	}

	d := a.Sub(b)
	if d != (Vec3{X: 2, Y: 2, Z: 1}) {
		t.Fatalf("Sub = %+v", d)
	}

	if got := d.Norm(); got != 3 {
		t.Fatalf("Norm = %v, want 3", got)
	}
}

func TestVec3_Unit(t *testing.T) {
	u, err := Vec3{X: 0, Y: 0, Z: -4}.Unit()
	if err != nil {
		t.Fatalf("Unit failed: %v", err)
	}

	if u != (Vec3{X: 0, Y: 0, Z: -1}) {
		t.Fatalf("Unit = %+v", u)
	}

	if math.Abs(u.Norm()-1) > 1e-15 {
		t.Fatalf("unit vector norm = %v", u.Norm())
	}

	_, err = Vec3{}.Unit()
	if !errors.Is(err, ErrZeroVector) {
		t.Fatalf("expected ErrZeroVector, got %v", err)
	}
}

func TestVec3_Scale(t *testing.T) {
	v := Vec3{X: 1, Y: -2, Z: 0.5}.Scale(-2)
	if v != (Vec3{X: -2, Y: 4, Z: -1}) {
		t.Fatalf("Scale = %+v", v)
	}
}
