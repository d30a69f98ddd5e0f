// Package vec provides the fixed-dimension point types the sampler operates
// on. Points are plain value types backed by arrays: the zero value is the
// origin, == compares componentwise, and every operation returns a copy.
package vec

// Point is the minimal capability set the sampler needs from a point type:
// indexed component access, componentwise arithmetic, scalar scaling, squared
// norm, equality, and a fixed dimension. The sampler is written only against
// this constraint, so the same code instantiates at any dimension without
// dynamic dispatch.
type Point[V any] interface {
	comparable

	// Dim reports the number of components.
	Dim() int
	// At returns component i.
	At(i int) float64
	// Set returns a copy with component i replaced by x.
	Set(i int, x float64) V
	// Add returns the componentwise sum with u.
	Add(u V) V
	// Sub returns the componentwise difference with u.
	Sub(u V) V
	// Scale returns the point scaled by s.
	Scale(s float64) V
	// Div returns the point divided by s.
	Div(s float64) V
	// Norm2 returns the squared Euclidean norm.
	Norm2() float64
}

// Vec2 is a point in 2-dimensional space.
type Vec2 [2]float64

// V2 returns the 2D point (x, y).
func V2(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) Dim() int                  { return 2 }
func (v Vec2) At(i int) float64          { return v[i] }
func (v Vec2) Set(i int, x float64) Vec2 { v[i] = x; return v }
func (v Vec2) Add(u Vec2) Vec2           { return Vec2{v[0] + u[0], v[1] + u[1]} }
func (v Vec2) Sub(u Vec2) Vec2           { return Vec2{v[0] - u[0], v[1] - u[1]} }
func (v Vec2) Scale(s float64) Vec2      { return Vec2{v[0] * s, v[1] * s} }
func (v Vec2) Div(s float64) Vec2        { return Vec2{v[0] / s, v[1] / s} }
func (v Vec2) Norm2() float64            { return v[0]*v[0] + v[1]*v[1] }

// Vec3 is a point in 3-dimensional space.
type Vec3 [3]float64

// V3 returns the 3D point (x, y, z).
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Dim() int                  { return 3 }
func (v Vec3) At(i int) float64          { return v[i] }
func (v Vec3) Set(i int, x float64) Vec3 { v[i] = x; return v }
func (v Vec3) Add(u Vec3) Vec3           { return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]} }
func (v Vec3) Sub(u Vec3) Vec3           { return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]} }
func (v Vec3) Scale(s float64) Vec3      { return Vec3{v[0] * s, v[1] * s, v[2] * s} }
func (v Vec3) Div(s float64) Vec3        { return Vec3{v[0] / s, v[1] / s, v[2] / s} }
func (v Vec3) Norm2() float64            { return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] }

// Vec4 is a point in 4-dimensional space.
type Vec4 [4]float64

// V4 returns the 4D point (x, y, z, w).
func V4(x, y, z, w float64) Vec4 { return Vec4{x, y, z, w} }

func (v Vec4) Dim() int                  { return 4 }
func (v Vec4) At(i int) float64          { return v[i] }
func (v Vec4) Set(i int, x float64) Vec4 { v[i] = x; return v }
func (v Vec4) Add(u Vec4) Vec4 {
	return Vec4{v[0] + u[0], v[1] + u[1], v[2] + u[2], v[3] + u[3]}
}
func (v Vec4) Sub(u Vec4) Vec4 {
	return Vec4{v[0] - u[0], v[1] - u[1], v[2] - u[2], v[3] - u[3]}
}
func (v Vec4) Scale(s float64) Vec4 { return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s} }
func (v Vec4) Div(s float64) Vec4   { return Vec4{v[0] / s, v[1] / s, v[2] / s, v[3] / s} }
func (v Vec4) Norm2() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3]
}
