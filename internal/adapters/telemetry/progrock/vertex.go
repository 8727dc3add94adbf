package progrock

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex wraps *progrock.VertexRecorder as a ports.Vertex.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer capturing the stage's standard output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer capturing the stage's error output.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}

// Complete marks the vertex as finished.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
