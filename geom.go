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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// midpoint returns the point halfway between p and q.
func midpoint(p, q r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(p, q))
}

// mean returns the average of ps. It requires at least one point.
func mean(ps ...r3.Vec) r3.Vec {
	assert(len(ps) > 0)
	var sum r3.Vec
	for _, p := range ps {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(ps)), sum)
}

// finite reports whether every coordinate of p is a finite number.
func finite(p r3.Vec) bool {
	for _, c := range [...]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
