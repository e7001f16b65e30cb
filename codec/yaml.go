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
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/hajimehoshi/go-halfedge"
)

// GraphYAMLCodec dumps the half-edge graph as YAML.
type GraphYAMLCodec struct{}

// NewGraphYAMLCodec creates a new YAML graph codec
func NewGraphYAMLCodec() *GraphYAMLCodec {
	return &GraphYAMLCodec{}
}

// Format returns the codec format identifier
func (c *GraphYAMLCodec) Format() string {
	return "yaml-graph"
}

type yamlGraph struct {
	Topology string       `yaml:"topology"`
	Vertices []yamlVertex `yaml:"vertices"`
	Edges    []yamlEdge   `yaml:"edges"`
	Faces    []yamlFace   `yaml:"faces"`
}

type yamlVertex struct {
	Index    int       `yaml:"index"`
	Position []float64 `yaml:"position,flow"`
	Outgoing int       `yaml:"outgoing"`
}

type yamlEdge struct {
	Index       int `yaml:"index"`
	Source      int `yaml:"source"`
	Destination int `yaml:"destination"`
	Face        int `yaml:"face"`
	Prev        int `yaml:"prev"`
	Next        int `yaml:"next"`
	Twin        int `yaml:"twin"`
}

type yamlFace struct {
	Index    int   `yaml:"index"`
	Edge     int   `yaml:"edge"`
	Vertices []int `yaml:"vertices,flow"`
}

// Export writes the topology of m to w.
func (c *GraphYAMLCodec) Export(m *halfedge.Mesh, w io.Writer) error {
	g := yamlGraph{
		Topology: m.Topology().String(),
		Vertices: make([]yamlVertex, 0, m.NumVertices()),
		Edges:    make([]yamlEdge, 0, m.NumEdges()),
		Faces:    make([]yamlFace, 0, m.NumFaces()),
	}
	for _, v := range m.Vertices() {
		g.Vertices = append(g.Vertices, yamlVertex{
			Index:    int(v.Index),
			Position: []float64{v.Position.X, v.Position.Y, v.Position.Z},
			Outgoing: int(v.Outgoing),
		})
	}
	for _, e := range m.Edges() {
		g.Edges = append(g.Edges, yamlEdge{
			Index:       int(e.Index),
			Source:      int(e.Source),
			Destination: destination(m, e.Index),
			Face:        int(e.Face),
			Prev:        int(e.Prev),
			Next:        int(e.Next),
			Twin:        int(e.Twin),
		})
	}
	for _, f := range m.Faces() {
		g.Faces = append(g.Faces, yamlFace{
			Index:    int(f.Index),
			Edge:     int(f.Edge),
			Vertices: faceVertices(m, f.Index),
		})
	}
	return encodeYAML(w, &g)
}

// MeshYAMLCodec reads and writes face-vertex meshes:
//
//	topology: quads
//	positions:
//	  - [0, 0, 0]
//	  - ...
//	indices: [0, 1, 2, 3]
type MeshYAMLCodec struct{}

// NewMeshYAMLCodec creates a new YAML face-vertex codec
func NewMeshYAMLCodec() *MeshYAMLCodec {
	return &MeshYAMLCodec{}
}

// Format returns the codec format identifier
func (c *MeshYAMLCodec) Format() string {
	return "yaml"
}

type yamlMesh struct {
	Topology  string      `yaml:"topology"`
	Positions []yamlPoint `yaml:"positions"`
	Indices   []int       `yaml:"indices,flow"`
}

type yamlPoint []float64

// MarshalYAML writes a point as a flow sequence.
func (p yamlPoint) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range p {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(c, 'g', -1, 64),
		})
	}
	return n, nil
}

// ParseTopology accepts "triangles", "quads" or their cardinality.
func ParseTopology(s string) (halfedge.Topology, error) {
	switch s {
	case "triangles", "3":
		return halfedge.Triangles, nil
	case "quads", "4":
		return halfedge.Quads, nil
	}
	return 0, fmt.Errorf("%w: unknown topology %q", halfedge.ErrInvalidMeshData, s)
}

// Parse reads a face-vertex mesh. The result is not validated beyond
// its shape; halfedge.NewMesh does that.
func (c *MeshYAMLCodec) Parse(r io.Reader) (*halfedge.FaceVertexMesh, error) {
	var ym yamlMesh
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&ym); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	topology, err := ParseTopology(ym.Topology)
	if err != nil {
		return nil, err
	}
	fv := &halfedge.FaceVertexMesh{
		Positions: make([]r3.Vec, len(ym.Positions)),
		Indices:   ym.Indices,
		Topology:  topology,
	}
	for i, p := range ym.Positions {
		if len(p) != 3 {
			return nil, fmt.Errorf("%w: position %d has %d coordinates", halfedge.ErrInvalidMeshData, i, len(p))
		}
		fv.Positions[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	return fv, nil
}

// Export writes m in face-vertex form.
func (c *MeshYAMLCodec) Export(m *halfedge.Mesh, w io.Writer) error {
	return c.ExportFaceVertex(m.FaceVertexMesh(), w)
}

// ExportFaceVertex writes fv to w.
func (c *MeshYAMLCodec) ExportFaceVertex(fv *halfedge.FaceVertexMesh, w io.Writer) error {
	ym := yamlMesh{
		Topology:  fv.Topology.String(),
		Positions: make([]yamlPoint, len(fv.Positions)),
		Indices:   fv.Indices,
	}
	for i, p := range fv.Positions {
		ym.Positions[i] = yamlPoint{p.X, p.Y, p.Z}
	}
	return encodeYAML(w, &ym)
}

func encodeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
