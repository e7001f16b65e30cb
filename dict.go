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

// edgeKey identifies a directed vertex pair.
type edgeKey struct {
	from VertexID
	to   VertexID
}

// edgeDict maps directed vertex pairs to the half-edge running over
// them. On a manifold, consistently wound mesh every key is unique and
// the reversed key, when present, is the twin.
type edgeDict map[edgeKey]EdgeID

// insert registers e under (from, to). If the key is already taken the
// dictionary is left unchanged, and the earlier edge is returned with
// dup set.
func (d edgeDict) insert(from, to VertexID, e EdgeID) (EdgeID, bool) {
	k := edgeKey{from: from, to: to}
	if prev, ok := d[k]; ok {
		return prev, true
	}
	d[k] = e
	return e, false
}

// search returns the half-edge running from from to to, or NoEdge.
func (d edgeDict) search(from, to VertexID) EdgeID {
	if e, ok := d[edgeKey{from: from, to: to}]; ok {
		return e
	}
	return NoEdge
}
