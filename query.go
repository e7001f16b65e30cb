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

// Topology returns the polygon type shared by every face.
func (m *Mesh) Topology() Topology {
	return m.topology
}

func (m *Mesh) NumVertices() int { return len(m.vertices) }
func (m *Mesh) NumEdges() int    { return len(m.edges) }
func (m *Mesh) NumFaces() int    { return len(m.faces) }

// NumUndirectedEdges returns the number of undirected edges: twin pairs
// count once, boundary half-edges once each.
func (m *Mesh) NumUndirectedEdges() int {
	n := 0
	for _, e := range m.edges {
		if !e.Twin.Exists() || e.Index < e.Twin {
			n++
		}
	}
	return n
}

// Vertex returns a copy of vertex v.
func (m *Mesh) Vertex(v VertexID) (Vertex, bool) {
	if !m.validVertex(v) {
		return Vertex{}, false
	}
	return m.vertices[v], true
}

// Edge returns a copy of half-edge e.
func (m *Mesh) Edge(e EdgeID) (HalfEdge, bool) {
	if !m.validEdge(e) {
		return HalfEdge{}, false
	}
	return m.edges[e], true
}

// Face returns a copy of face f.
func (m *Mesh) Face(f FaceID) (Face, bool) {
	if !m.validFace(f) {
		return Face{}, false
	}
	return m.faces[f], true
}

// Vertices returns a copy of all vertices, ordered by index.
func (m *Mesh) Vertices() []Vertex {
	return append([]Vertex(nil), m.vertices...)
}

// Edges returns a copy of all half-edges, ordered by index.
func (m *Mesh) Edges() []HalfEdge {
	return append([]HalfEdge(nil), m.edges...)
}

// Faces returns a copy of all faces, ordered by index.
func (m *Mesh) Faces() []Face {
	return append([]Face(nil), m.faces...)
}

// Destination returns the vertex e points to.
func (m *Mesh) Destination(e EdgeID) (VertexID, bool) {
	if !m.validEdge(e) {
		return -1, false
	}
	return m.dst(e), true
}

// ring returns the half-edges of f in ring order starting at its
// representative edge. At most limit+1 edges are collected, so a ring
// longer than limit yields a longer slice.
func (m *Mesh) ring(f FaceID, limit int) []EdgeID {
	start := m.faces[f].Edge
	edges := []EdgeID{start}
	for e := m.edges[start].Next; e != start && len(edges) <= limit; e = m.edges[e].Next {
		edges = append(edges, e)
	}
	return edges
}

// FaceRing returns the half-edges bounding f, starting at its
// representative edge.
func (m *Mesh) FaceRing(f FaceID) []EdgeID {
	if !m.validFace(f) {
		return nil
	}
	return m.ring(f, len(m.edges))
}

// VertexRing returns the half-edges leaving v, in the rotation order of
// the subdivision solver. For a boundary vertex the rotation starts at
// its boundary half-edge, so that every outgoing edge is listed once.
func (m *Mesh) VertexRing(v VertexID) []EdgeID {
	if !m.validVertex(v) || !m.vertices[v].Outgoing.Exists() {
		return nil
	}
	start, err := m.boundaryOutgoing(v)
	if err != nil {
		return nil
	}

	var edges []EdgeID
	e := start
	for len(edges) <= len(m.edges) {
		edges = append(edges, e)
		e = m.edges[m.edges[e].Prev].Twin
		if !e.Exists() || e == start {
			break
		}
	}
	return edges
}

// Valence returns the number of edges incident to v.
func (m *Mesh) Valence(v VertexID) int {
	out := m.VertexRing(v)
	if len(out) == 0 {
		return 0
	}
	if m.IsBoundaryVertex(v) {
		// The incoming boundary edge has no outgoing twin.
		return len(out) + 1
	}
	return len(out)
}

// IsBoundaryVertex reports whether v is incident to a boundary edge.
func (m *Mesh) IsBoundaryVertex(v VertexID) bool {
	if !m.validVertex(v) || !m.vertices[v].Outgoing.Exists() {
		return false
	}
	e, err := m.boundaryOutgoing(v)
	return err == nil && !m.edges[e].Twin.Exists()
}

// BoundaryEdges returns the half-edges without twin, ordered by index.
func (m *Mesh) BoundaryEdges() []EdgeID {
	var edges []EdgeID
	for _, e := range m.edges {
		if !e.Twin.Exists() {
			edges = append(edges, e.Index)
		}
	}
	return edges
}
