// Copyright 2026 The go-halfedge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package halfedge

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// FaceVertexMesh is a flat polygon mesh: vertex positions and, for each
// face, Topology.Cardinality() consecutive indices into Positions.
type FaceVertexMesh struct {
	Positions []r3.Vec
	Indices   []int
	Topology  Topology
}

// NumFaces returns the number of faces described by Indices.
func (fv *FaceVertexMesh) NumFaces() int {
	if !fv.Topology.valid() {
		return 0
	}
	return len(fv.Indices) / fv.Topology.Cardinality()
}

// validate checks fv without building anything.
func (fv *FaceVertexMesh) validate() error {
	if !fv.Topology.valid() {
		return fmt.Errorf("%w: unsupported topology %v", ErrInvalidMeshData, fv.Topology)
	}
	n := fv.Topology.Cardinality()
	if len(fv.Indices)%n != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of %d", ErrInvalidMeshData, len(fv.Indices), n)
	}
	for i, p := range fv.Positions {
		if !finite(p) {
			return fmt.Errorf("%w: position %d is not finite", ErrInvalidMeshData, i)
		}
	}
	for i, idx := range fv.Indices {
		if idx < 0 || idx >= len(fv.Positions) {
			return fmt.Errorf("%w: index %d at %d is out of range [0, %d)", ErrInvalidMeshData, idx, i, len(fv.Positions))
		}
	}
	for f := 0; f < len(fv.Indices)/n; f++ {
		face := fv.Indices[f*n : (f+1)*n]
		for j := range face {
			for k := j + 1; k < n; k++ {
				if face[j] == face[k] {
					return fmt.Errorf("%w: face %d repeats vertex %d", ErrInvalidMeshData, f, face[j])
				}
			}
		}
	}
	return nil
}

// NewMesh converts a face-vertex mesh into a half-edge graph.
//
// Vertex i of the result sits at fv.Positions[i] and face i follows
// fv.Indices in order; the representative edge of a face leaves its
// first listed vertex. Faces sharing an edge must list it in opposite
// directions; a directed edge used twice fails with ErrNonManifoldEdge.
func NewMesh(fv *FaceVertexMesh) (*Mesh, error) {
	if err := fv.validate(); err != nil {
		return nil, err
	}

	n := fv.Topology.Cardinality()
	m := &Mesh{
		vertices: make([]Vertex, 0, len(fv.Positions)),
		edges:    make([]HalfEdge, 0, len(fv.Indices)),
		faces:    make([]Face, 0, len(fv.Indices)/n),
		topology: fv.Topology,
	}
	for _, p := range fv.Positions {
		m.makeVertex(p)
	}

	created := make(edgeDict, len(fv.Indices))
	for i := 0; i < len(fv.Indices)/n; i++ {
		offset := i * n
		f := m.makeFace(NoEdge)

		prev := NoEdge
		for j := 0; j < n; j++ {
			start := VertexID(fv.Indices[offset+j])
			end := VertexID(fv.Indices[offset+(j+1)%n])

			e := m.makeEdge(start, f)
			if _, dup := created.insert(start, end, e); dup {
				return nil, &EdgeError{From: start, To: end, Err: ErrNonManifoldEdge}
			}

			if prev.Exists() {
				m.link(prev, e)
			} else {
				m.faces[f].Edge = e
			}

			if twin := created.search(end, start); twin.Exists() {
				m.setTwins(e, twin)
			}
			prev = e
		}
		m.link(prev, m.faces[f].Edge)
	}

	Logger().Debug("halfedge: mesh built",
		"vertices", len(m.vertices),
		"edges", len(m.edges),
		"faces", len(m.faces),
		"topology", m.topology.String())
	return m, nil
}

// NewMeshFromPolygons builds a mesh from per-face index lists. Every face
// must have the length of the first one, 3 or 4; mixed polygon sizes are
// rejected with ErrInvalidMeshData.
func NewMeshFromPolygons(positions []r3.Vec, faces [][]int) (*Mesh, error) {
	fv := &FaceVertexMesh{
		Positions: positions,
		Topology:  Triangles,
	}
	if len(faces) > 0 {
		fv.Topology = Topology(len(faces[0]))
		if !fv.Topology.valid() {
			return nil, fmt.Errorf("%w: face 0 has %d vertices", ErrInvalidMeshData, len(faces[0]))
		}
	}
	n := fv.Topology.Cardinality()
	fv.Indices = make([]int, 0, len(faces)*n)
	for i, face := range faces {
		if len(face) != n {
			return nil, fmt.Errorf("%w: face %d has %d vertices, want %d", ErrInvalidMeshData, i, len(face), n)
		}
		fv.Indices = append(fv.Indices, face...)
	}
	return NewMesh(fv)
}
