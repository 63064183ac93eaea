package core

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec3 is used for points, directions and linear RGB colors (X,Y,Z = R,G,B)
type Vec3 = r3.Vector

// NearZeroEpsilon is the per-component threshold below which a vector counts as zero
const NearZeroEpsilon = 1e-8

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// MultiplyVec returns component-wise multiplication of two vectors
func MultiplyVec(a, b Vec3) Vec3 {
	return Vec3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// NearZero reports whether every component is smaller than NearZeroEpsilon in magnitude
func NearZero(v Vec3) bool {
	return math.Abs(v.X) < NearZeroEpsilon &&
		math.Abs(v.Y) < NearZeroEpsilon &&
		math.Abs(v.Z) < NearZeroEpsilon
}

// Lerp linearly interpolates between a (t=0) and b (t=1)
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Component returns v[i] for i in 0..2 and panics otherwise
func Component(v Vec3, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("core: vector component index out of range")
}

// Reflect calculates the reflection of v off a surface with normal n
func Reflect(v, n Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract bends the unit vector uv through a surface with normal n using Snell's law.
// etaiOverEtat is the ratio of refractive indices (incident over transmitted).
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-math.Sqrt(math.Abs(1.0 - rOutPerp.Norm2())))
	return rOutPerp.Add(rOutParallel)
}

// Luminance returns the perceptual luminance of an RGB color
func Luminance(c Vec3) float64 {
	return 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
