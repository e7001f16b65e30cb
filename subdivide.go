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
)

// Subdivide runs one Catmull-Clark pass over m. Every face becomes
// cardinality quads, and the mesh topology is Quads afterwards.
//
// The pass is atomic: on error m is left exactly as it was.
func (m *Mesh) Subdivide() error {
	pts, err := m.SolveCatmullClark()
	if err != nil {
		return err
	}

	before := [3]int{len(m.vertices), len(m.edges), len(m.faces)}

	work := m.Clone()
	work.splitVertices = nil
	for i := range work.vertices {
		work.vertices[i].Position = pts.VertexPoints[i]
	}

	// Split edges and faces of the original topology only; the splits
	// append new entities behind these counts.
	edgeCount := len(work.edges)
	faceCount := len(work.faces)
	for e := 0; e < edgeCount; e++ {
		if _, err := work.SplitEdge(EdgeID(e), pts.EdgePoints[e]); err != nil {
			return fmt.Errorf("halfedge: subdivide: %w", err)
		}
	}
	for f := 0; f < faceCount; f++ {
		if _, err := work.SplitFace(FaceID(f), pts.FacePoints[f]); err != nil {
			return fmt.Errorf("halfedge: subdivide: %w", err)
		}
	}
	work.topology = Quads
	work.splitVertices = nil

	*m = *work

	Logger().Debug("halfedge: subdivided",
		"vertices", before[0], "edges", before[1], "faces", before[2],
		"newVertices", len(m.vertices), "newEdges", len(m.edges), "newFaces", len(m.faces))
	return nil
}

// SubdivideLevels runs levels successive Catmull-Clark passes. Each pass
// is atomic; if pass k fails, m is left subdivided k-1 times.
func (m *Mesh) SubdivideLevels(levels int) error {
	if levels < 0 {
		return fmt.Errorf("%w: negative subdivision level %d", ErrInvalidMeshData, levels)
	}
	for i := 0; i < levels; i++ {
		if err := m.Subdivide(); err != nil {
			return fmt.Errorf("halfedge: pass %d of %d: %w", i+1, levels, err)
		}
	}
	return nil
}
