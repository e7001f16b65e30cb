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
	"gonum.org/v1/gonum/spatial/r3"
)

// FaceVertexMesh converts m back into a flat face-vertex mesh. Positions
// are ordered by vertex index; each face contributes the sources of
// Topology().Cardinality() half-edges, walked from its representative
// edge.
func (m *Mesh) FaceVertexMesh() *FaceVertexMesh {
	n := m.topology.Cardinality()
	fv := &FaceVertexMesh{
		Positions: make([]r3.Vec, len(m.vertices)),
		Indices:   make([]int, 0, len(m.faces)*n),
		Topology:  m.topology,
	}
	for _, v := range m.vertices {
		fv.Positions[v.Index] = v.Position
	}
	for _, f := range m.faces {
		e := f.Edge
		for i := 0; i < n; i++ {
			fv.Indices = append(fv.Indices, int(m.edges[e].Source))
			e = m.edges[e].Next
		}
	}
	return fv
}
