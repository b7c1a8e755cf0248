package core

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Epsilon is the float32 machine epsilon (2^-23), the tolerance used by Equals
const Epsilon float32 = 1.0 / (1 << 23)

// ErrIndexOutOfRange is returned for component indices outside 0..2
var ErrIndexOutOfRange = errors.New("vec3 index out of range")

// Vec3 represents a 3D vector or an RGB color
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromArray creates a Vec3 from a float32 triple
func FromArray(a f32.Vec3) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components as a float32 triple
func (v Vec3) Array() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// R returns the red channel when v is used as a color
func (v Vec3) R() float32 { return v.X }

// G returns the green channel when v is used as a color
func (v Vec3) G() float32 { return v.Y }

// B returns the blue channel when v is used as a color
func (v Vec3) B() float32 { return v.Z }

// At returns the component at index i (0=X, 1=Y, 2=Z)
func (v Vec3) At(i int) (float32, error) {
	if i < 0 || i > 2 {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return v.Array()[i], nil
}

// MustAt is like At but panics on a bad index
func (v Vec3) MustAt(i int) float32 {
	c, err := v.At(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Set replaces the component at index i
func (v *Vec3) Set(i int, value float32) error {
	if i < 0 || i > 2 {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	a := v.Array()
	a[i] = value
	*v = FromArray(a)
	return nil
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// DivideVec returns component-wise division of two vectors.
// Zero components in other yield Inf or NaN.
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// AddScalar adds s to every component
func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// SubtractScalar subtracts s from every component
func (v Vec3) SubtractScalar(s float32) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float32) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// AddAssign adds other to v in place
func (v *Vec3) AddAssign(other Vec3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// AddScalarAssign adds s to every component of v in place
func (v *Vec3) AddScalarAssign(s float32) {
	v.X += s
	v.Y += s
	v.Z += s
}

// SubtractAssign subtracts other from v in place
func (v *Vec3) SubtractAssign(other Vec3) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// SubtractScalarAssign subtracts s from every component of v in place
func (v *Vec3) SubtractScalarAssign(s float32) {
	v.X -= s
	v.Y -= s
	v.Z -= s
}

// MultiplyVecAssign multiplies v by other component-wise in place
func (v *Vec3) MultiplyVecAssign(other Vec3) {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
}

// MultiplyAssign scales v in place
func (v *Vec3) MultiplyAssign(scalar float32) {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
}

// DivideVecAssign divides v by other component-wise in place
func (v *Vec3) DivideVecAssign(other Vec3) {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
}

// DivideAssign divides v by a scalar in place
func (v *Vec3) DivideAssign(scalar float32) {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: -(v.X*other.Z - v.Z*other.X),
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Unit returns v scaled to length 1.
// The zero vector is not special-cased and produces NaN components.
func (v Vec3) Unit() Vec3 {
	return v.Divide(v.Length())
}

// Equals reports whether every component differs by less than Epsilon
func (v Vec3) Equals(other Vec3) bool {
	return v.ApproxEquals(other, Epsilon)
}

// ApproxEquals reports whether every component differs by less than eps
func (v Vec3) ApproxEquals(other Vec3, eps float32) bool {
	return math32.Abs(v.X-other.X) < eps &&
		math32.Abs(v.Y-other.Y) < eps &&
		math32.Abs(v.Z-other.Z) < eps
}

// String renders the vector as "(x, y, z)"
func (v Vec3) String() string {
	return "(" + formatComponent(v.X) + ", " + formatComponent(v.Y) + ", " + formatComponent(v.Z) + ")"
}

func formatComponent(c float32) string {
	return strconv.FormatFloat(float64(c), 'g', -1, 32)
}
