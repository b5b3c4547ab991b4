package graphics

import (
	"terrain-viewer/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ColorMesh is a dynamic VBO of interleaved position+RGBA vertices, refilled
// from a meshing.Batch every frame.
type ColorMesh struct {
	vao      uint32
	vbo      uint32
	capacity int // bytes allocated on the GPU
	ranges   []meshing.Range
}

// NewColorMesh creates the vertex array with position at location 0 and
// colour at location 1.
func NewColorMesh() *ColorMesh {
	m := &ColorMesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)

	stride := int32(meshing.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// Upload copies the batch to the GPU, growing the buffer when needed.
func (m *ColorMesh) Upload(b *meshing.Batch) {
	m.ranges = append(m.ranges[:0], b.Ranges...)
	size := len(b.Vertices) * 4
	if size == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if size > m.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(b.Vertices), gl.DYNAMIC_DRAW)
		m.capacity = size
	} else {
		// orphan then fill to avoid stalling on the previous frame's draw
		gl.BufferData(gl.ARRAY_BUFFER, m.capacity, nil, gl.DYNAMIC_DRAW)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(b.Vertices))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw issues one draw call per uploaded range using the given primitive.
func (m *ColorMesh) Draw(mode uint32) {
	if len(m.ranges) == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	for _, r := range m.ranges {
		gl.DrawArrays(mode, r.First, r.Count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GL objects
func (m *ColorMesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}
