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

// SplitEdge inserts a vertex into the half-edge e, running from a to b,
// so that e becomes a→m followed by a new half-edge m→b in the same face.
// It returns m.
//
// An undirected edge is split once per side. If the twin of e has
// already been split, its vertex is reused, pos is ignored, and the four
// half-edges around m are twinned with each other. Otherwise a vertex is
// created at pos, and e keeps pointing to its unsplit twin until the twin
// is split in turn. Check reports the mesh as corrupt in that state, since
// e and its twin no longer run over the same endpoints.
//
// Vertices created by SplitEdge are remembered as edge points until the
// next Subdivide completes; SplitFace relies on them.
func (m *Mesh) SplitEdge(e EdgeID, pos r3.Vec) (VertexID, error) {
	if !m.validEdge(e) {
		return -1, fmt.Errorf("%w: %d", ErrNoSuchEdge, e)
	}
	if !finite(pos) {
		return -1, fmt.Errorf("%w: split position %v is not finite", ErrInvalidMeshData, pos)
	}

	a := m.edges[e].Source
	next := m.edges[e].Next
	b := m.edges[next].Source

	// t runs b→a unless it was split into b→mid and mid→a (t2).
	var t, t2 EdgeID = m.edges[e].Twin, NoEdge
	mid := VertexID(-1)
	if t.Exists() {
		if m.edges[t].Source != b {
			return -1, fmt.Errorf("%w: edge %d has already been split", ErrInvalidMeshData, e)
		}
		t2 = m.edges[t].Next
		if c := m.edges[t2].Source; c != a {
			if m.dst(t2) != a {
				return -1, fmt.Errorf("%w: twin of edge %d does not end at vertex %d", ErrCorruptMesh, e, a)
			}
			mid = c
		}
	}

	if mid < 0 {
		mid = m.makeVertex(pos)
		t2 = NoEdge
		if m.splitVertices == nil {
			m.splitVertices = map[VertexID]struct{}{}
		}
		m.splitVertices[mid] = struct{}{}
	}
	n := m.makeEdge(mid, m.edges[e].Face)
	m.link(n, next)
	m.link(e, n)

	if t2.Exists() {
		m.setTwins(e, t2)
		m.setTwins(n, t)
	}
	return mid, nil
}

// SplitFace fans the face f around a new vertex at center. Every original
// edge of f must have been split beforehand, so that its ring alternates
// corners and edge vertices and has 2·k half-edges for a k-gon, starting
// at a corner. Only vertices inserted by SplitEdge count as edge points.
// The face becomes k quads
//
//	[a_i, m_i, c, m_{i-1}]
//
// where a_i are the corners, m_i the edge vertices following them and c
// the center. f is reused for the quad of its representative edge; k-1
// faces are created for the others. SplitFace returns c.
func (m *Mesh) SplitFace(f FaceID, center r3.Vec) (VertexID, error) {
	if !m.validFace(f) {
		return -1, fmt.Errorf("%w: %d", ErrNoSuchFace, f)
	}
	if !finite(center) {
		return -1, fmt.Errorf("%w: face center %v is not finite", ErrInvalidMeshData, center)
	}
	k := m.topology.Cardinality()
	ring := m.ring(f, 2*k)
	if len(ring) != 2*k {
		return -1, fmt.Errorf("%w: face %d is not split along its %d edges", ErrInvalidMeshData, f, k)
	}
	for i, e := range ring {
		// Corners and edge points alternate.
		if m.isSplitVertex(m.edges[e].Source) != (i%2 == 1) {
			return -1, fmt.Errorf("%w: face %d is not split once per edge", ErrInvalidMeshData, f)
		}
	}

	c := m.makeVertex(center)

	faces := make([]FaceID, k)
	faces[0] = f
	for i := 1; i < k; i++ {
		faces[i] = m.makeFace(ring[2*i])
	}

	toCenter := make([]EdgeID, k)
	fromCenter := make([]EdgeID, k)
	for i := 0; i < k; i++ {
		fi := faces[i]
		// a_i → m_i, and m_{i-1} → a_i.
		corner := ring[2*i]
		before := ring[(2*i+2*k-1)%(2*k)]
		mi := m.edges[ring[2*i+1]].Source

		in := m.makeEdge(mi, fi)
		out := m.makeEdge(c, fi)
		m.edges[corner].Face = fi
		m.edges[before].Face = fi

		m.link(before, corner)
		m.link(corner, in)
		m.link(in, out)
		m.link(out, before)

		toCenter[i] = in
		fromCenter[i] = out
	}
	for i := 0; i < k; i++ {
		m.setTwins(toCenter[i], fromCenter[(i+1)%k])
	}
	return c, nil
}
