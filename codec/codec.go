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

// Package codec writes half-edge meshes to text formats and reads
// face-vertex meshes back. The dumps only use the read-only surface of
// halfedge.Mesh.
package codec

import (
	"io"

	"github.com/hajimehoshi/go-halfedge"
)

// Importer reads a face-vertex mesh.
type Importer interface {
	Parse(r io.Reader) (*halfedge.FaceVertexMesh, error)
	Format() string
}

// Exporter writes a mesh.
type Exporter interface {
	Export(m *halfedge.Mesh, w io.Writer) error
	Format() string
}

// faceVertices returns the vertex indices of f in ring order.
func faceVertices(m *halfedge.Mesh, f halfedge.FaceID) []int {
	ring := m.FaceRing(f)
	vs := make([]int, len(ring))
	for i, e := range ring {
		he, _ := m.Edge(e)
		vs[i] = int(he.Source)
	}
	return vs
}

func destination(m *halfedge.Mesh, e halfedge.EdgeID) int {
	d, ok := m.Destination(e)
	if !ok {
		return -1
	}
	return int(d)
}
