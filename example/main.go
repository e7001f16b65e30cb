//go:build example
// +build example

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hajimehoshi/go-halfedge"
	"github.com/hajimehoshi/go-halfedge/codec"
)

var (
	flagLevels  = flag.Int("levels", 0, "subdivision passes applied at start")
	flagIn      = flag.String("in", "", "YAML face-vertex mesh to load instead of the box")
	flagSize    = flag.Int("size", 480, "window size in pixels")
	flagVerbose = flag.Bool("v", false, "log mesh operations")
)

func box() *halfedge.FaceVertexMesh {
	return &halfedge.FaceVertexMesh{
		Positions: []r3.Vec{
			{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		},
		Indices: []int{
			0, 3, 2, 1,
			0, 1, 5, 4,
			1, 2, 6, 5,
			2, 3, 7, 6,
			3, 0, 4, 7,
			4, 5, 6, 7,
		},
		Topology: halfedge.Quads,
	}
}

func load() (*halfedge.Mesh, error) {
	fv := box()
	if *flagIn != "" {
		f, err := os.Open(*flagIn)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		fv, err = codec.NewMeshYAMLCodec().Parse(f)
		if err != nil {
			return nil, err
		}
	}
	m, err := halfedge.NewMesh(fv)
	if err != nil {
		return nil, err
	}
	if err := m.SubdivideLevels(*flagLevels); err != nil {
		return nil, err
	}
	return m, nil
}

type viewer struct {
	mesh  *halfedge.Mesh
	size  int
	angle float64
}

func (v *viewer) project(p r3.Vec) (float64, float64) {
	s, c := math.Sincos(v.angle)
	x := c*p.X + s*p.Z
	z := -s*p.X + c*p.Z
	// Tilt towards the viewer.
	y := 0.94*p.Y - 0.34*z
	half := float64(v.size) / 2
	return half + x*half/2.5, half - y*half/2.5
}

func (v *viewer) update(screen *ebiten.Image) error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := v.mesh.Subdivide(); err != nil {
			return err
		}
		fmt.Printf("%d vertices, %d faces\n", v.mesh.NumVertices(), v.mesh.NumFaces())
	}
	v.angle += 0.01

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	clr := color.RGBA{0x80, 0xc0, 0xff, 0xff}
	for _, e := range v.mesh.Edges() {
		// Draw each undirected edge once.
		if e.Twin.Exists() && e.Twin < e.Index {
			continue
		}
		dst, _ := v.mesh.Destination(e.Index)
		a, _ := v.mesh.Vertex(e.Source)
		b, _ := v.mesh.Vertex(dst)
		x1, y1 := v.project(a.Position)
		x2, y2 := v.project(b.Position)
		ebitenutil.DrawLine(screen, x1, y1, x2, y2, clr)
	}
	return nil
}

func main() {
	flag.Parse()
	if *flagVerbose {
		halfedge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	m, err := load()
	if err != nil {
		log.Fatal(err)
	}
	v := &viewer{mesh: m, size: *flagSize}
	if err := ebiten.Run(v.update, v.size, v.size, 1, "Catmull-Clark (Space: subdivide)"); err != nil {
		log.Fatal(err)
	}
}
