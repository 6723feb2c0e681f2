package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-raycaster/pkg/core"
)

// ErrFaceIndexOutOfRange is returned when a face references a vertex that
// has not been declared yet
var ErrFaceIndexOutOfRange = errors.New("face index out of range")

// Only these two whole-line shapes are recognized. Anything else, including
// comments, normals, texture coordinates, quads and negative indices, is
// skipped without error.
var (
	vertexLine = regexp.MustCompile(`^v\s+(\S+)\s+(\S+)\s+(\S+)\s*$`)
	faceLine   = regexp.MustCompile(`^f\s+(\d+)\s+(\d+)\s+(\d+)\s*$`)
)

// OBJData contains the geometry read from a Wavefront OBJ subset
type OBJData struct {
	Vertices     []r3.Vec // Vertex positions in file order
	Faces        [][3]int // Zero-based vertex indices, one triple per triangle
	SkippedLines int      // Lines that matched neither recognized shape
}

// LoadOBJ opens and parses an OBJ file
func LoadOBJ(filename string, logger core.Logger) (*OBJData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	logger.Printf("Loaded OBJ data: %d vertices, %d triangles (%d lines skipped) in %v\n",
		len(data.Vertices), len(data.Faces), data.SkippedLines, time.Since(startTime))
	return data, nil
}

// ParseOBJ reads "v x y z" and "f i j k" lines. Face indices are 1-based
// and resolved against the vertices declared so far.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if m := vertexLine.FindStringSubmatch(line); m != nil {
			var coords [3]float64
			for i := range coords {
				v, err := strconv.ParseFloat(m[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex coordinate %q: %w", lineNumber, m[i+1], err)
				}
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, fmt.Errorf("line %d: invalid vertex coordinate %q: not finite", lineNumber, m[i+1])
				}
				coords[i] = v
			}
			data.Vertices = append(data.Vertices, r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]})
			continue
		}

		if m := faceLine.FindStringSubmatch(line); m != nil {
			var face [3]int
			for i := range face {
				index, err := strconv.Atoi(m[i+1])
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid face index %q: %w", lineNumber, m[i+1], err)
				}
				if index < 1 || index > len(data.Vertices) {
					return nil, fmt.Errorf("line %d: %w: %d with %d vertices declared",
						lineNumber, ErrFaceIndexOutOfRange, index, len(data.Vertices))
				}
				face[i] = index - 1
			}
			data.Faces = append(data.Faces, face)
			continue
		}

		data.SkippedLines++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ data: %w", err)
	}
	return data, nil
}

// Triangles resolves every face to its three vertex positions
func (d *OBJData) Triangles() []r3.Triangle {
	triangles := make([]r3.Triangle, len(d.Faces))
	for i, face := range d.Faces {
		triangles[i] = r3.Triangle{d.Vertices[face[0]], d.Vertices[face[1]], d.Vertices[face[2]]}
	}
	return triangles
}

// Bounds returns the axis-aligned box around all vertices.
// A mesh without vertices has a zero box.
func (d *OBJData) Bounds() r3.Box {
	if len(d.Vertices) == 0 {
		return r3.Box{}
	}

	lo := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, v := range d.Vertices {
		lo = r3.Vec{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
		hi = r3.Vec{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
	}
	return r3.Box{Min: lo, Max: hi}
}
