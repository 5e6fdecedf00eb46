package vjoy

import (
	"math"
	"testing"
)

func TestGeometryIdentity(t *testing.T) {
	g := Geometry{Bounds: Rect{X: 10, Y: 20, Width: 30, Height: 40}}
	if g.LogicalRect() != g.Bounds {
		t.Errorf("LogicalRect = %v, want bounds", g.LogicalRect())
	}
	if !g.Contains(Vec2{15, 25}) || g.Contains(Vec2{5, 25}) {
		t.Error("identity containment mismatch")
	}
}

func TestGeometryScaled(t *testing.T) {
	g := Geometry{
		Bounds:    Rect{X: -50, Y: -50, Width: 100, Height: 100},
		Transform: ScaleRotate(2, 2, 0, 100, 100),
	}
	want := Rect{X: 0, Y: 0, Width: 200, Height: 200}
	got := g.LogicalRect()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) || !approx(got.Width, want.Width) || !approx(got.Height, want.Height) {
		t.Errorf("LogicalRect = %v, want %v", got, want)
	}
	if !g.Contains(Vec2{190, 10}) {
		t.Error("(190,10) should be inside the scaled area")
	}
	if g.Contains(Vec2{210, 100}) {
		t.Error("(210,100) should be outside the scaled area")
	}
}

func TestGeometryRotated(t *testing.T) {
	g := Geometry{
		Bounds:    Rect{X: -50, Y: -50, Width: 100, Height: 100},
		Transform: ScaleRotate(1, 1, math.Pi/4, 0, 0),
	}
	// Rotation moves the corners, not the logical size.
	got := g.LogicalRect()
	if !approx(got.Width, 100) || !approx(got.Height, 100) {
		t.Errorf("LogicalRect size = %vx%v, want 100x100", got.Width, got.Height)
	}
	if !g.Contains(Vec2{60, 0}) {
		t.Error("(60,0) lies on a rotated corner and should be inside")
	}
	if g.Contains(Vec2{45, 45}) {
		t.Error("(45,45) lies past a rotated edge and should be outside")
	}
}

func TestInvertAffine(t *testing.T) {
	m := ScaleRotate(2, 3, 0.5, 10, -4)
	inv := invertAffine(m)
	x, y := transformPoint(m, 7, 11)
	bx, by := transformPoint(inv, x, y)
	if math.Abs(bx-7) > 1e-9 || math.Abs(by-11) > 1e-9 {
		t.Errorf("round trip = (%v,%v), want (7,11)", bx, by)
	}
}

func TestInvertAffine_Singular(t *testing.T) {
	if got := invertAffine([6]float64{0, 0, 0, 0, 5, 5}); got != identityTransform {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}
