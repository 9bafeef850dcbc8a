package gltut

// Point is a 2D point or size.
//
type Point struct {
	X float32
	Y float32
}

func Pt(x, y float32) Point { return Point{x, y} }
func PtI(x, y int) Point    { return Point{float32(x), float32(y)} }

func (p Point) Add(pt Point) Point  { return Point{p.X + pt.X, p.Y + pt.Y} }
func (p Point) Div(k float32) Point { return Point{p.X / k, p.Y / k} }
func (p Point) Mul(k float32) Point { return Point{p.X * k, p.Y * k} }

// Scale returns p with each coordinate multiplied by the matching one in s.
func (p Point) Scale(s Point) Point { return Point{p.X * s.X, p.Y * s.Y} }

// Empty reports whether p, as a size, has a zero or negative dimension.
func (p Point) Empty() bool { return p.X <= 0 || p.Y <= 0 }
