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

package codec

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hajimehoshi/go-halfedge"
)

// CSVCodec dumps the half-edge graph as delimiter separated rows, one per
// entity. The first field names the entity kind:
//
//	vertex  index x y z outgoing
//	edge    index source destination face prev next twin
//	face    index edge vertex...
//
// Absent references are written as -1.
type CSVCodec struct {
	Separator rune
}

// NewCSVCodec creates a tab separated CSV codec.
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{Separator: '\t'}
}

// Format returns the codec format identifier
func (c *CSVCodec) Format() string {
	return "csv"
}

// Export writes every vertex, half-edge and face of m to w.
func (c *CSVCodec) Export(m *halfedge.Mesh, w io.Writer) error {
	cw := csv.NewWriter(w)
	if c.Separator != 0 {
		cw.Comma = c.Separator
	}

	itoa := strconv.Itoa
	ftoa := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

	for _, v := range m.Vertices() {
		rec := []string{"vertex", itoa(int(v.Index)), ftoa(v.Position.X), ftoa(v.Position.Y), ftoa(v.Position.Z), itoa(int(v.Outgoing))}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	}
	for _, e := range m.Edges() {
		rec := []string{"edge", itoa(int(e.Index)), itoa(int(e.Source)), itoa(destination(m, e.Index)), itoa(int(e.Face)), itoa(int(e.Prev)), itoa(int(e.Next)), itoa(int(e.Twin))}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	}
	for _, f := range m.Faces() {
		rec := []string{"face", itoa(int(f.Index)), itoa(int(f.Edge))}
		for _, v := range faceVertices(m, f.Index) {
			rec = append(rec, itoa(v))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
