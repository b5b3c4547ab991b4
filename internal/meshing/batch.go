package meshing

// FloatsPerVertex is position (xyz) followed by colour (rgba)
const FloatsPerVertex = 7

// Range is a contiguous run of vertices drawn with one primitive call
type Range struct {
	First int32
	Count int32
}

// Batch is an interleaved position+RGBA vertex stream plus the draw ranges
// that split it into primitives. Batches are reused frame to frame.
type Batch struct {
	Vertices []float32
	Ranges   []Range
}

// Reset empties the batch, keeping its backing arrays.
func (b *Batch) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Ranges = b.Ranges[:0]
}

// VertexCount returns the number of vertices in the batch.
func (b *Batch) VertexCount() int {
	return len(b.Vertices) / FloatsPerVertex
}

func (b *Batch) push(x, y, z, r, g, bl, a float32) {
	b.Vertices = append(b.Vertices, x, y, z, r, g, bl, a)
}

func (b *Batch) grow(vertices int) {
	need := len(b.Vertices) + vertices*FloatsPerVertex
	if cap(b.Vertices) < need {
		v := make([]float32, len(b.Vertices), need)
		copy(v, b.Vertices)
		b.Vertices = v
	}
}
