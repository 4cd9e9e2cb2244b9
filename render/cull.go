// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/chewxy/math32"
)

// Plane represents a plane in 3D space using the equation
// ax + by + cz + d = 0, where (a, b, c) is the normal and d the distance
// from origin.
type Plane struct {
	Normal   Vec3
	Distance float32
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that the positive half-space is inside.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// Frustum plane indices.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// ExtractFrustum extracts frustum planes from a combined column-major
// View * Projection matrix using the Gribb/Hartmann method.
func ExtractFrustum(viewProj [16]float32) Frustum {
	var f Frustum

	// For a column-major matrix, element M[i][j] is at index j*4 + i.
	// Each plane is a sum or difference of row 3 and another row.
	row := func(i int) [4]float32 {
		return [4]float32{viewProj[i], viewProj[4+i], viewProj[8+i], viewProj[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	set := func(idx int, a, b [4]float32, sub bool) {
		if sub {
			f.Planes[idx] = Plane{
				Normal:   Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]},
				Distance: a[3] - b[3],
			}
		} else {
			f.Planes[idx] = Plane{
				Normal:   Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]},
				Distance: a[3] + b[3],
			}
		}
	}

	set(FrustumLeft, r3, r0, false)
	set(FrustumRight, r3, r0, true)
	set(FrustumBottom, r3, r1, false)
	set(FrustumTop, r3, r1, true)
	set(FrustumNear, r3, r2, false)
	set(FrustumFar, r3, r2, true)

	for i := range f.Planes {
		f.normalizePlane(i)
	}
	return f
}

// normalizePlane normalizes the plane so that the normal has unit length.
func (f *Frustum) normalizePlane(i int) {
	n := f.Planes[i].Normal
	length := math32.Sqrt(n.Dot(n))
	if length == 0 {
		return
	}
	inv := 1.0 / length
	f.Planes[i].Normal = Vec3{n.X * inv, n.Y * inv, n.Z * inv}
	f.Planes[i].Distance *= inv
}

// ContainsSphere reports whether a sphere intersects the frustum.
// A sphere touching any plane is treated as visible.
func (f *Frustum) ContainsSphere(center Vec3, radius float32) bool {
	for i := range f.Planes {
		p := &f.Planes[i]
		if p.Normal.Dot(center)+p.Distance < -radius {
			return false
		}
	}
	return true
}
