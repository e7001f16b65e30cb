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
	"errors"
	"fmt"
)

var (
	// ErrInvalidMeshData is returned for malformed face-vertex input: an
	// unknown topology, an index buffer whose length is not a multiple of
	// the cardinality, an out-of-range or repeated index, a non-finite
	// position, or a face that does not meet a splitter's precondition.
	ErrInvalidMeshData = errors.New("halfedge: invalid mesh data")

	// ErrNonManifoldEdge is returned when one directed vertex pair is used
	// by two faces, or when a vertex fan cannot be walked as a manifold.
	ErrNonManifoldEdge = errors.New("halfedge: non-manifold edge")

	// ErrDegenerateVertex is returned when a vertex with no incident edge
	// takes part in a subdivision.
	ErrDegenerateVertex = errors.New("halfedge: degenerate vertex")

	ErrNoSuchEdge = errors.New("halfedge: no such edge")
	ErrNoSuchFace = errors.New("halfedge: no such face")

	// ErrCorruptMesh is returned by Check.
	ErrCorruptMesh = errors.New("halfedge: corrupt mesh")
)

// VertexError reports a failure tied to one vertex.
type VertexError struct {
	Vertex VertexID
	Err    error
}

func (e *VertexError) Error() string {
	return fmt.Sprintf("%v: vertex %d", e.Err, e.Vertex)
}

func (e *VertexError) Unwrap() error {
	return e.Err
}

// EdgeError reports a failure tied to the directed vertex pair From→To.
type EdgeError struct {
	From, To VertexID
	Err      error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("%v: edge (%d, %d)", e.Err, e.From, e.To)
}

func (e *EdgeError) Unwrap() error {
	return e.Err
}
