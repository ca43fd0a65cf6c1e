package mathx

import "math"

type Point struct {
	X, Y float64
}

// Bounds is a box in screen coordinates, where Top < Bottom.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Rect is a box given by two corners, X1 <= X2 and Y1 <= Y2.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

func RadiansAngle(p1, p2 Point) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
}

func DegreesAngle(p1, p2 Point) float64 {
	return RadsToDegs(RadiansAngle(p1, p2))
}

func Distance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

func Midpoint(p1, p2 Point) Point {
	return Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
}

// Slope is ±Inf for a vertical line and NaN for two equal points.
func Slope(p1, p2 Point) float64 {
	return (p2.Y - p1.Y) / (p2.X - p1.X)
}

func PerpendicularSlope(p1, p2 Point) float64 {
	return -1 / Slope(p1, p2)
}

// IsInside reports whether p lies strictly within b.
func IsInside(p Point, b Bounds) bool {
	return p.X > b.Left && p.X < b.Right && p.Y > b.Top && p.Y < b.Bottom
}

func IsInsideCircle(p, center Point, radius float64) bool {
	return Distance(p, center) < radius
}

// Contains reports whether a contains b, edges included.
func Contains(a, b Rect) bool {
	return a.X1 <= b.X1 && a.Y1 <= b.Y1 && a.X2 >= b.X2 && a.Y2 >= b.Y2
}

func Overlaps(a, b Rect) bool {
	return !(a.X2 < b.X1 || a.X1 > b.X2 || a.Y2 < b.Y1 || a.Y1 > b.Y2)
}

func IsInsideRect(a, b Rect) bool {
	return Contains(b, a)
}

func IsOutsideRect(a, b Rect) bool {
	return a.X1 <= b.X1 || a.Y1 <= b.Y1 || a.X2 >= b.X2 || a.Y2 >= b.Y2
}

func IsTouchingRect(a, b Rect) bool {
	return a.X1 == b.X1 || a.X2 == b.X2 || a.Y1 == b.Y1 || a.Y2 == b.Y2
}

func DegsToRads(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func RadsToDegs(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
