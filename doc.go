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

// Package halfedge is a polygon-mesh topology kernel.
//
// It converts a face-vertex mesh of triangles or quads into a half-edge
// graph, and subdivides that graph with the Catmull-Clark scheme:
//
//	m, err := halfedge.NewMesh(&halfedge.FaceVertexMesh{
//		Positions: positions,
//		Indices:   indices,
//		Topology:  halfedge.Quads,
//	})
//	if err != nil {
//		return err
//	}
//	if err := m.SubdivideLevels(3); err != nil {
//		return err
//	}
//	out := m.FaceVertexMesh()
//
// Vertices, half-edges and faces live in arenas owned by the Mesh and
// refer to each other by index. Indices are stable: entities are only
// ever appended.
package halfedge
