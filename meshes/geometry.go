package meshes

import "math"

// Every generated shape shares one vertex layout, interleaved per vertex:
//   - Loc0: Pos (Vec3)
//   - Loc1: Normal (Vec3)
//   - Loc2: UV0 (Vec2)
const FloatsPerVertex = 8

// Shape mesh resolutions
const (
	sphereStacks  = 32
	sphereSectors = 32

	cylinderSegments = 36

	torusRingSegments = 40
	torusTubeSegments = 20
	torusTubeRadius   = 0.25
)

func appendVertex(buf []float32, px, py, pz, nx, ny, nz, u, v float32) []float32 {
	return append(buf, px, py, pz, nx, ny, nz, u, v)
}

// planeGeometry is a 2x2 quad in the XZ plane, centered on the origin, facing +Y
func planeGeometry() ([]float32, []uint32) {

	verts := make([]float32, 0, 4*FloatsPerVertex)
	verts = appendVertex(verts, -1, 0, 1, 0, 1, 0, 0, 0)
	verts = appendVertex(verts, 1, 0, 1, 0, 1, 0, 1, 0)
	verts = appendVertex(verts, 1, 0, -1, 0, 1, 0, 1, 1)
	verts = appendVertex(verts, -1, 0, -1, 0, 1, 0, 0, 1)

	indices := []uint32{0, 1, 2, 0, 2, 3}
	return verts, indices
}

// boxGeometry is a unit cube centered on the origin. Faces carry their own
// vertices so each face gets a flat normal and a full 0..1 UV range.
func boxGeometry() ([]float32, []uint32) {

	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}

	const h = 0.5
	faces := []face{
		{normal: [3]float32{0, 0, 1}, corners: [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},    // front
		{normal: [3]float32{0, 0, -1}, corners: [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}}, // back
		{normal: [3]float32{-1, 0, 0}, corners: [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}}, // left
		{normal: [3]float32{1, 0, 0}, corners: [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},    // right
		{normal: [3]float32{0, 1, 0}, corners: [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},    // top
		{normal: [3]float32{0, -1, 0}, corners: [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}}, // bottom
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	verts := make([]float32, 0, 24*FloatsPerVertex)
	indices := make([]uint32, 0, 36)

	for i := 0; i < len(faces); i++ {

		f := &faces[i]
		base := uint32(i * 4)

		for c := 0; c < 4; c++ {
			verts = appendVertex(verts,
				f.corners[c][0], f.corners[c][1], f.corners[c][2],
				f.normal[0], f.normal[1], f.normal[2],
				uvs[c][0], uvs[c][1],
			)
		}

		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return verts, indices
}

// sphereGeometry is a UV sphere of radius 1 centered on the origin
func sphereGeometry() ([]float32, []uint32) {

	verts := make([]float32, 0, (sphereStacks+1)*(sphereSectors+1)*FloatsPerVertex)
	indices := make([]uint32, 0, sphereStacks*sphereSectors*6)

	for i := 0; i <= sphereStacks; i++ {

		phi := math.Pi/2 - math.Pi*float64(i)/sphereStacks
		y := float32(math.Sin(phi))
		ringRadius := float32(math.Cos(phi))

		for j := 0; j <= sphereSectors; j++ {

			theta := 2 * math.Pi * float64(j) / sphereSectors
			x := ringRadius * float32(math.Cos(theta))
			z := ringRadius * float32(math.Sin(theta))

			u := float32(j) / sphereSectors
			v := float32(i) / sphereStacks

			// Unit sphere, so the normal equals the position
			verts = appendVertex(verts, x, y, z, x, y, z, u, v)
		}
	}

	for i := 0; i < sphereStacks; i++ {
		for j := 0; j < sphereSectors; j++ {

			a := uint32(i*(sphereSectors+1) + j)
			b := a + sphereSectors + 1

			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}

	return verts, indices
}

// cylinderGeometry is a cylinder of radius 1 with its base on the XZ plane
// and its top at y=1, so scaling by height keeps objects resting on surfaces
func cylinderGeometry() ([]float32, []uint32) {

	verts := make([]float32, 0, (cylinderSegments+1)*2*FloatsPerVertex+(cylinderSegments+2)*2*FloatsPerVertex)
	indices := make([]uint32, 0, cylinderSegments*12)

	// Side rings
	for i := 0; i <= cylinderSegments; i++ {

		theta := 2 * math.Pi * float64(i) / cylinderSegments
		x := float32(math.Cos(theta))
		z := float32(math.Sin(theta))
		u := float32(i) / cylinderSegments

		verts = appendVertex(verts, x, 0, z, x, 0, z, u, 0)
		verts = appendVertex(verts, x, 1, z, x, 0, z, u, 1)
	}

	for i := 0; i < cylinderSegments; i++ {

		a := uint32(i * 2)
		indices = append(indices, a, a+1, a+2, a+2, a+1, a+3)
	}

	// Caps: a center vertex plus a ring, fanned into triangles
	for _, lid := range []struct {
		y      float32
		normal float32
	}{{0, -1}, {1, 1}} {

		center := uint32(len(verts) / FloatsPerVertex)
		verts = appendVertex(verts, 0, lid.y, 0, 0, lid.normal, 0, 0.5, 0.5)

		for i := 0; i <= cylinderSegments; i++ {

			theta := 2 * math.Pi * float64(i) / cylinderSegments
			x := float32(math.Cos(theta))
			z := float32(math.Sin(theta))

			verts = appendVertex(verts, x, lid.y, z, 0, lid.normal, 0, 0.5+x/2, 0.5+z/2)
		}

		for i := 0; i < cylinderSegments; i++ {

			a := center + 1 + uint32(i)
			if lid.normal > 0 {
				indices = append(indices, center, a, a+1)
			} else {
				indices = append(indices, center, a+1, a)
			}
		}
	}

	return verts, indices
}

// torusGeometry is a torus in the XY plane (hole along Z) with ring radius 1
func torusGeometry() ([]float32, []uint32) {

	verts := make([]float32, 0, (torusRingSegments+1)*(torusTubeSegments+1)*FloatsPerVertex)
	indices := make([]uint32, 0, torusRingSegments*torusTubeSegments*6)

	for i := 0; i <= torusRingSegments; i++ {

		u := 2 * math.Pi * float64(i) / torusRingSegments
		cosU := float32(math.Cos(u))
		sinU := float32(math.Sin(u))

		for j := 0; j <= torusTubeSegments; j++ {

			v := 2 * math.Pi * float64(j) / torusTubeSegments
			cosV := float32(math.Cos(v))
			sinV := float32(math.Sin(v))

			px := (1 + torusTubeRadius*cosV) * cosU
			py := (1 + torusTubeRadius*cosV) * sinU
			pz := torusTubeRadius * sinV

			verts = appendVertex(verts,
				px, py, pz,
				cosV*cosU, cosV*sinU, sinV,
				float32(i)/torusRingSegments, float32(j)/torusTubeSegments,
			)
		}
	}

	for i := 0; i < torusRingSegments; i++ {
		for j := 0; j < torusTubeSegments; j++ {

			a := uint32(i*(torusTubeSegments+1) + j)
			b := a + torusTubeSegments + 1

			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}

	return verts, indices
}
