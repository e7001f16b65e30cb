package halfedge

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-12

func vec(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

func approxEqual(a, b r3.Vec) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func singleTriangle() *FaceVertexMesh {
	return &FaceVertexMesh{
		Positions: []r3.Vec{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)},
		Indices:   []int{0, 1, 2},
		Topology:  Triangles,
	}
}

func twoTriangles() *FaceVertexMesh {
	return &FaceVertexMesh{
		Positions: []r3.Vec{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0), vec(1, 1, 0)},
		Indices:   []int{0, 1, 2, 1, 3, 2},
		Topology:  Triangles,
	}
}

func unitQuad() *FaceVertexMesh {
	return &FaceVertexMesh{
		Positions: []r3.Vec{vec(0, 0, 0), vec(1, 0, 0), vec(1, 1, 0), vec(0, 1, 0)},
		Indices:   []int{0, 1, 2, 3},
		Topology:  Quads,
	}
}

// box is a closed cube centered on the origin.
func box(h float64) *FaceVertexMesh {
	return &FaceVertexMesh{
		Positions: []r3.Vec{
			vec(-h, -h, -h), vec(h, -h, -h), vec(h, -h, h), vec(-h, -h, h),
			vec(-h, h, -h), vec(h, h, -h), vec(h, h, h), vec(-h, h, h),
		},
		Indices: []int{
			0, 1, 2, 3, // bottom
			4, 7, 6, 5, // top
			0, 4, 5, 1,
			2, 6, 7, 3,
			1, 5, 6, 2,
			3, 7, 4, 0,
		},
		Topology: Quads,
	}
}

// octahedron is a closed triangle mesh with valence 4 at every vertex:
// ±X, ±Y, ±Z in that order.
func octahedron() *FaceVertexMesh {
	return &FaceVertexMesh{
		Positions: []r3.Vec{
			vec(1, 0, 0), vec(-1, 0, 0),
			vec(0, 1, 0), vec(0, -1, 0),
			vec(0, 0, 1), vec(0, 0, -1),
		},
		Indices: []int{
			0, 2, 4,
			0, 5, 2,
			0, 4, 3,
			0, 3, 5,
			1, 4, 2,
			1, 2, 5,
			1, 3, 4,
			1, 5, 3,
		},
		Topology: Triangles,
	}
}

// grid is an open nx by nz grid of unit quads in the XY plane.
func grid(nx, nz int) *FaceVertexMesh {
	index := func(i, j int) int { return i*(nz+1) + j }
	fv := &FaceVertexMesh{Topology: Quads}
	for i := 0; i <= nx; i++ {
		for j := 0; j <= nz; j++ {
			fv.Positions = append(fv.Positions, vec(float64(i), float64(j), 0))
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < nz; j++ {
			fv.Indices = append(fv.Indices, index(i, j), index(i+1, j), index(i+1, j+1), index(i, j+1))
		}
	}
	return fv
}

func mustBuild(t *testing.T, fv *FaceVertexMesh) *Mesh {
	t.Helper()
	m, err := NewMesh(fv)
	if err != nil {
		t.Fatalf("NewMesh() error = %v", err)
	}
	return m
}

// checkTwins verifies twin symmetry and endpoints without requiring a
// uniform ring length, for meshes in the middle of a split.
func checkTwins(t *testing.T, m *Mesh) {
	t.Helper()
	for _, e := range m.edges {
		if m.edges[e.Next].Prev != e.Index || m.edges[e.Prev].Next != e.Index {
			t.Errorf("edge %d: ring links are not symmetric", e.Index)
		}
		if !e.Twin.Exists() {
			continue
		}
		tw := m.edges[e.Twin]
		if tw.Twin != e.Index {
			t.Errorf("edge %d: twin %d has twin %d", e.Index, e.Twin, tw.Twin)
		}
		if tw.Source != m.dst(e.Index) || e.Source != m.dst(tw.Index) {
			t.Errorf("edge %d (%d→%d): twin %d runs %d→%d", e.Index, e.Source, m.dst(e.Index), tw.Index, tw.Source, m.dst(tw.Index))
		}
	}
}

func wantErr(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}
