package math

import (
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{5, 7}
	b := Vec2{3, 4}
	if got := a.Sub(b); got != (Vec2{2, 3}) {
		t.Errorf("Vec2.Sub() = %v, want {2 3}", got)
	}
	if got := a.Add(b).Scale(0.5); got != (Vec2{4, 5.5}) {
		t.Errorf("Vec2.Add().Scale() = %v, want {4 5.5}", got)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	if got := a.Add(b).Sub(a); got != b {
		t.Errorf("a + b - a = %v, want %v", got, b)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Vec3.Dot() = %v, want 12", got)
	}
	if got := (Vec3{2, 3, 6}).Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2IsZero(t *testing.T) {
	if !(Vec2{}).IsZero() {
		t.Error("zero Vec2 should report IsZero")
	}
	if (Vec2{0, 1}).IsZero() {
		t.Error("Vec2{0, 1} should not report IsZero")
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{2, 3, 6}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing the zero vector should return zero")
	}
}

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg  float32
		want float32
	}{
		{0, 0},
		{180, Pi},
		{-90, -Pi / 2},
	}
	for _, tt := range tests {
		got := DegToRad(tt.deg)
		if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.want)
		}
		if back := RadToDeg(got); back-tt.deg > 1e-4 || back-tt.deg < -1e-4 {
			t.Errorf("RadToDeg(DegToRad(%v)) = %v", tt.deg, back)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0.3, 0.3, 120, 0.3},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
