package halfedge

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSolveUnitQuad(t *testing.T) {
	m := mustBuild(t, unitQuad())
	pts, err := m.SolveCatmullClark()
	if err != nil {
		t.Fatalf("SolveCatmullClark() error = %v", err)
	}

	if got, want := pts.FacePoints[0], vec(0.5, 0.5, 0); !approxEqual(got, want) {
		t.Errorf("FacePoints[0] = %v, want %v", got, want)
	}
	// Every edge is on the boundary, so edge points are midpoints.
	wantEdges := []r3.Vec{vec(0.5, 0, 0), vec(1, 0.5, 0), vec(0.5, 1, 0), vec(0, 0.5, 0)}
	for i, want := range wantEdges {
		if got := pts.EdgePoints[i]; !approxEqual(got, want) {
			t.Errorf("EdgePoints[%d] = %v, want %v", i, got, want)
		}
	}
	// Boundary rule: mean of the two boundary midpoints and the corner.
	wantVertices := []r3.Vec{
		vec(1.0/6, 1.0/6, 0),
		vec(5.0/6, 1.0/6, 0),
		vec(5.0/6, 5.0/6, 0),
		vec(1.0/6, 5.0/6, 0),
	}
	for i, want := range wantVertices {
		if got := pts.VertexPoints[i]; !approxEqual(got, want) {
			t.Errorf("VertexPoints[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestSolveCubeCorner(t *testing.T) {
	m := mustBuild(t, box(1))
	pts, err := m.SolveCatmullClark()
	if err != nil {
		t.Fatalf("SolveCatmullClark() error = %v", err)
	}
	// Valence 3: (F/3 + 2R/3 + 0·P) / 3 with F = -1/3 and R = -2/3 per axis.
	c := -5.0 / 9
	if got, want := pts.VertexPoints[0], vec(c, c, c); !approxEqual(got, want) {
		t.Errorf("VertexPoints[0] = %v, want %v", got, want)
	}
	for i, p := range pts.VertexPoints {
		for _, x := range [...]float64{p.X, p.Y, p.Z} {
			if math.Abs(math.Abs(x)-5.0/9) > eps {
				t.Errorf("VertexPoints[%d] = %v, want ±5/9 on every axis", i, p)
			}
		}
	}
	// Interior edge point: mean of two endpoints and two face points.
	// Edge 0 runs (-1,-1,-1)→(1,-1,-1) between the bottom and front faces.
	if got, want := pts.EdgePoints[0], vec(0, -0.75, -0.75); !approxEqual(got, want) {
		t.Errorf("EdgePoints[0] = %v, want %v", got, want)
	}
	for _, e := range m.Edges() {
		if got, want := pts.EdgePoints[e.Index], pts.EdgePoints[e.Twin]; !approxEqual(got, want) {
			t.Errorf("EdgePoints[%d] = %v, twin has %v", e.Index, got, want)
		}
	}
}

func TestSolveOctahedronVertex(t *testing.T) {
	m := mustBuild(t, octahedron())
	pts, err := m.SolveCatmullClark()
	if err != nil {
		t.Fatalf("SolveCatmullClark() error = %v", err)
	}
	// Valence 4: F = (1/3, 0, 0), R = (1/2, 0, 0), P = (1, 0, 0).
	// (F + 2R + P) / 4 = 7/12 along X.
	if got, want := pts.VertexPoints[0], vec(7.0/12, 0, 0); !approxEqual(got, want) {
		t.Errorf("VertexPoints[0] = %v, want %v", got, want)
	}
	if got, want := pts.FacePoints[0], vec(1.0/3, 1.0/3, 1.0/3); !approxEqual(got, want) {
		t.Errorf("FacePoints[0] = %v, want %v", got, want)
	}
	// Edge 0 runs +X→+Y between faces 0 and 1.
	if got, want := pts.EdgePoints[0], vec(5.0/12, 5.0/12, 0); !approxEqual(got, want) {
		t.Errorf("EdgePoints[0] = %v, want %v", got, want)
	}
}

func TestSolveFlatInteriorVertexStays(t *testing.T) {
	m := mustBuild(t, grid(2, 2))
	pts, err := m.SolveCatmullClark()
	if err != nil {
		t.Fatalf("SolveCatmullClark() error = %v", err)
	}
	if got, want := pts.VertexPoints[4], vec(1, 1, 0); !approxEqual(got, want) {
		t.Errorf("VertexPoints[4] = %v, want %v", got, want)
	}
	// Side vertex (0,1): boundary midpoints (0,0.5) and (0,1.5).
	if got, want := pts.VertexPoints[1], vec(0, 1, 0); !approxEqual(got, want) {
		t.Errorf("VertexPoints[1] = %v, want %v", got, want)
	}
}

func TestSolveDoesNotMutate(t *testing.T) {
	m := mustBuild(t, box(2))
	before := m.Clone()
	if _, err := m.SolveCatmullClark(); err != nil {
		t.Fatalf("SolveCatmullClark() error = %v", err)
	}
	if !reflect.DeepEqual(m, before) {
		t.Errorf("SolveCatmullClark() mutated the mesh")
	}
}

func TestSolveDegenerateVertex(t *testing.T) {
	fv := unitQuad()
	fv.Positions = append(fv.Positions, vec(5, 5, 5))
	m := mustBuild(t, fv)

	pts, err := m.SolveCatmullClark()
	if pts != nil {
		t.Errorf("SolveCatmullClark() returned points on error")
	}
	wantErr(t, err, ErrDegenerateVertex)
	var ve *VertexError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *VertexError", err)
	}
	if ve.Vertex != 4 {
		t.Errorf("VertexError.Vertex = %d, want 4", ve.Vertex)
	}
}
