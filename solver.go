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

// CatmullClarkPoints holds the target positions of one Catmull-Clark pass,
// indexed by FaceID, EdgeID and VertexID respectively.
type CatmullClarkPoints struct {
	FacePoints   []r3.Vec
	EdgePoints   []r3.Vec
	VertexPoints []r3.Vec
}

// SolveCatmullClark computes the face points, edge points and vertex
// points of one subdivision pass over the current topology. The mesh is
// not modified.
//
// A vertex that no face uses fails with ErrDegenerateVertex. A vertex
// whose fan cannot be walked fails with ErrNonManifoldEdge.
func (m *Mesh) SolveCatmullClark() (*CatmullClarkPoints, error) {
	pts := &CatmullClarkPoints{
		FacePoints:   make([]r3.Vec, len(m.faces)),
		EdgePoints:   make([]r3.Vec, len(m.edges)),
		VertexPoints: make([]r3.Vec, len(m.vertices)),
	}

	ring := make([]r3.Vec, 0, m.topology.Cardinality())
	for i, f := range m.faces {
		ring = ring[:0]
		e := f.Edge
		for {
			ring = append(ring, m.vertices[m.edges[e].Source].Position)
			e = m.edges[e].Next
			if e == f.Edge {
				break
			}
		}
		pts.FacePoints[i] = mean(ring...)
	}

	for i, e := range m.edges {
		start := m.vertices[e.Source].Position
		end := m.vertices[m.dst(e.Index)].Position
		if !e.Twin.Exists() {
			pts.EdgePoints[i] = midpoint(start, end)
			continue
		}
		pts.EdgePoints[i] = mean(start, end, pts.FacePoints[e.Face], pts.FacePoints[m.edges[e.Twin].Face])
	}

	for i := range m.vertices {
		p, err := m.vertexPoint(VertexID(i), pts.FacePoints)
		if err != nil {
			return nil, err
		}
		pts.VertexPoints[i] = p
	}
	return pts, nil
}

// midEdge returns the midpoint of e.
func (m *Mesh) midEdge(e EdgeID) r3.Vec {
	return midpoint(m.vertices[m.edges[e].Source].Position, m.vertices[m.dst(e)].Position)
}

// vertexPoint relocates v. It rotates around v through prev and twin
// links, summing edge midpoints and face points, until the walk closes
// (interior vertex) or reaches an edge without twin (boundary vertex).
func (m *Mesh) vertexPoint(v VertexID, facePoints []r3.Vec) (r3.Vec, error) {
	vtx := m.vertices[v]
	start := vtx.Outgoing
	if !start.Exists() {
		return r3.Vec{}, &VertexError{Vertex: v, Err: ErrDegenerateVertex}
	}

	var q, r r3.Vec
	n := 0
	e := start
	for {
		n++
		r = r3.Add(r, m.midEdge(e))
		q = r3.Add(q, facePoints[m.edges[e].Face])

		in := m.edges[e].Prev
		e = m.edges[in].Twin
		if !e.Exists() {
			out, err := m.boundaryOutgoing(v)
			if err != nil {
				return r3.Vec{}, err
			}
			if m.edges[out].Twin.Exists() {
				return r3.Vec{}, &VertexError{Vertex: v, Err: fmt.Errorf("%w: fan is open on one side only", ErrNonManifoldEdge)}
			}
			return r3.Scale(1.0/3.0, r3.Add(r3.Add(m.midEdge(in), m.midEdge(out)), vtx.Position)), nil
		}
		if e == start {
			break
		}
		if n > len(m.edges) {
			return r3.Vec{}, &VertexError{Vertex: v, Err: fmt.Errorf("%w: fan does not close", ErrNonManifoldEdge)}
		}
	}

	fn := float64(n)
	p := r3.Scale(1/(fn*fn), q)
	p = r3.Add(p, r3.Scale(2/(fn*fn), r))
	p = r3.Add(p, r3.Scale((fn-3)/fn, vtx.Position))
	return p, nil
}

// boundaryOutgoing rotates around v from its outgoing edge through twin
// and next links, the opposite way to vertexPoint. It returns the
// boundary half-edge leaving v, or the outgoing edge itself when the fan
// closes.
func (m *Mesh) boundaryOutgoing(v VertexID) (EdgeID, error) {
	start := m.vertices[v].Outgoing
	e := start
	for n := 0; m.edges[e].Twin.Exists(); n++ {
		e = m.edges[m.edges[e].Twin].Next
		if e == start {
			return e, nil
		}
		if n > len(m.edges) {
			return NoEdge, &VertexError{Vertex: v, Err: fmt.Errorf("%w: fan does not close", ErrNonManifoldEdge)}
		}
	}
	return e, nil
}
