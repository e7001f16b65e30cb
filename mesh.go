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

// VertexID is the stable index of a vertex in its mesh.
type VertexID int

// EdgeID is the stable index of a half-edge in its mesh.
type EdgeID int

// FaceID is the stable index of a face in its mesh.
type FaceID int

// NoEdge marks an absent half-edge reference: a boundary twin, or the
// outgoing edge of a vertex no face uses.
const NoEdge EdgeID = -1

// Exists reports whether e refers to a half-edge.
func (e EdgeID) Exists() bool {
	return e >= 0
}

// Vertex is a point of the mesh.
type Vertex struct {
	Index    VertexID
	Position r3.Vec

	// Outgoing is one half-edge whose source is this vertex, or NoEdge.
	// It is a lookup hint only; any edge of the vertex fan would do.
	Outgoing EdgeID
}

// HalfEdge is one directed side of an undirected edge, bound to exactly
// one face.
type HalfEdge struct {
	Index  EdgeID
	Source VertexID
	Face   FaceID

	// Prev and Next complete the cyclic ring around Face.
	Prev EdgeID
	Next EdgeID

	// Twin runs the opposite direction over the same endpoints and belongs
	// to the neighbouring face. It is NoEdge on a mesh boundary.
	Twin EdgeID
}

// Face is a polygon of the mesh, known by one half-edge of its ring.
type Face struct {
	Index FaceID
	Edge  EdgeID
}

// Topology is the uniform polygon type of a mesh.
type Topology int

const (
	Triangles Topology = 3
	Quads     Topology = 4
)

// Cardinality returns the number of vertices per face.
func (t Topology) Cardinality() int {
	return int(t)
}

func (t Topology) valid() bool {
	return t == Triangles || t == Quads
}

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case Quads:
		return "quads"
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

// Mesh is a half-edge graph. It owns every vertex, half-edge and face;
// all references between them are indices into its arenas.
//
// A Mesh is not safe for concurrent mutation. Read-only methods may run
// concurrently with each other.
type Mesh struct {
	vertices []Vertex
	edges    []HalfEdge
	faces    []Face
	topology Topology

	// splitVertices holds the vertices SplitEdge created since the last
	// Subdivide.
	splitVertices map[VertexID]struct{}
}

func assert(cond bool) {
	if !cond {
		panic("halfedge: assertion error")
	}
}

// makeVertex appends a new vertex with no outgoing edge.
func (m *Mesh) makeVertex(pos r3.Vec) VertexID {
	id := VertexID(len(m.vertices))
	m.vertices = append(m.vertices, Vertex{
		Index:    id,
		Position: pos,
		Outgoing: NoEdge,
	})
	return id
}

// makeEdge appends a new half-edge leaving src and bounding f. Its ring
// and twin links are left unset; they must be assigned before the
// current edge operation is completed.
func (m *Mesh) makeEdge(src VertexID, f FaceID) EdgeID {
	id := EdgeID(len(m.edges))
	m.edges = append(m.edges, HalfEdge{
		Index:  id,
		Source: src,
		Face:   f,
		Prev:   NoEdge,
		Next:   NoEdge,
		Twin:   NoEdge,
	})
	if !m.vertices[src].Outgoing.Exists() {
		m.vertices[src].Outgoing = id
	}
	return id
}

// makeFace appends a new face whose representative edge is e.
func (m *Mesh) makeFace(e EdgeID) FaceID {
	id := FaceID(len(m.faces))
	m.faces = append(m.faces, Face{
		Index: id,
		Edge:  e,
	})
	return id
}

// link makes b follow a in their face ring.
func (m *Mesh) link(a, b EdgeID) {
	m.edges[a].Next = b
	m.edges[b].Prev = a
}

// setTwins makes a and b twins of each other.
func (m *Mesh) setTwins(a, b EdgeID) {
	m.edges[a].Twin = b
	m.edges[b].Twin = a
}

// dst returns the vertex e points to.
func (m *Mesh) dst(e EdgeID) VertexID {
	return m.edges[m.edges[e].Next].Source
}

// countFaceEdges walks the ring of f and returns its length. It stops
// after limit steps so that a broken ring cannot loop forever; -1 is
// returned in that case.
func (m *Mesh) countFaceEdges(f FaceID, limit int) int {
	start := m.faces[f].Edge
	e := start
	n := 0
	for {
		n++
		e = m.edges[e].Next
		if e == start {
			return n
		}
		if n > limit || !e.Exists() {
			return -1
		}
	}
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		vertices: append([]Vertex(nil), m.vertices...),
		edges:    append([]HalfEdge(nil), m.edges...),
		faces:    append([]Face(nil), m.faces...),
		topology: m.topology,
	}
	if m.splitVertices != nil {
		c.splitVertices = make(map[VertexID]struct{}, len(m.splitVertices))
		for v := range m.splitVertices {
			c.splitVertices[v] = struct{}{}
		}
	}
	return c
}

// isSplitVertex reports whether v was inserted by SplitEdge during the
// current pass.
func (m *Mesh) isSplitVertex(v VertexID) bool {
	_, ok := m.splitVertices[v]
	return ok
}

func (m *Mesh) validEdge(e EdgeID) bool {
	return e >= 0 && int(e) < len(m.edges)
}

func (m *Mesh) validVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(m.vertices)
}

func (m *Mesh) validFace(f FaceID) bool {
	return f >= 0 && int(f) < len(m.faces)
}

// Check checks the mesh for self-consistency. It returns an error
// wrapping ErrCorruptMesh that describes the first violation found.
func (m *Mesh) Check() error {
	corrupt := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: "+format, append([]interface{}{ErrCorruptMesh}, args...)...)
	}

	for i, v := range m.vertices {
		if v.Index != VertexID(i) {
			return corrupt("vertex %d has index %d", i, v.Index)
		}
		if !v.Outgoing.Exists() {
			continue
		}
		if !m.validEdge(v.Outgoing) {
			return corrupt("vertex %d: outgoing edge %d out of range", i, v.Outgoing)
		}
		if m.edges[v.Outgoing].Source != v.Index {
			return corrupt("vertex %d: outgoing edge %d leaves vertex %d", i, v.Outgoing, m.edges[v.Outgoing].Source)
		}
	}

	for i, e := range m.edges {
		if e.Index != EdgeID(i) {
			return corrupt("edge %d has index %d", i, e.Index)
		}
		if !m.validVertex(e.Source) {
			return corrupt("edge %d: source %d out of range", i, e.Source)
		}
		if !m.validFace(e.Face) {
			return corrupt("edge %d: face %d out of range", i, e.Face)
		}
		if !m.validEdge(e.Next) || !m.validEdge(e.Prev) {
			return corrupt("edge %d: ring link out of range", i)
		}
		if m.edges[e.Next].Prev != e.Index {
			return corrupt("edge %d: next.prev is %d", i, m.edges[e.Next].Prev)
		}
		if m.edges[e.Prev].Next != e.Index {
			return corrupt("edge %d: prev.next is %d", i, m.edges[e.Prev].Next)
		}
		if m.edges[e.Next].Face != e.Face {
			return corrupt("edge %d: next edge bounds face %d, not %d", i, m.edges[e.Next].Face, e.Face)
		}
		if !e.Twin.Exists() {
			continue
		}
		if !m.validEdge(e.Twin) {
			return corrupt("edge %d: twin %d out of range", i, e.Twin)
		}
		t := m.edges[e.Twin]
		if t.Twin != e.Index {
			return corrupt("edge %d: twin %d is twinned with %d", i, e.Twin, t.Twin)
		}
		if t.Source != m.dst(e.Index) || e.Source != m.dst(t.Index) {
			return corrupt("edge %d: twin %d does not run over the same endpoints", i, e.Twin)
		}
	}

	n := m.topology.Cardinality()
	for i, f := range m.faces {
		if f.Index != FaceID(i) {
			return corrupt("face %d has index %d", i, f.Index)
		}
		if !m.validEdge(f.Edge) {
			return corrupt("face %d: edge %d out of range", i, f.Edge)
		}
		if m.edges[f.Edge].Face != f.Index {
			return corrupt("face %d: edge %d bounds face %d", i, f.Edge, m.edges[f.Edge].Face)
		}
		if c := m.countFaceEdges(f.Index, len(m.edges)); c != n {
			return corrupt("face %d: ring has %d edges, want %d", i, c, n)
		}
	}

	seen := make(edgeDict, len(m.edges))
	for i := range m.edges {
		if _, dup := seen.insert(m.edges[i].Source, m.dst(EdgeID(i)), EdgeID(i)); dup {
			return corrupt("edge %d: directed pair (%d, %d) is used twice", i, m.edges[i].Source, m.dst(EdgeID(i)))
		}
	}
	return nil
}
