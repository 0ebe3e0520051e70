package tetris

import "math/rand"

// ShapePicker chooses the next shape to spawn.
type ShapePicker interface {
	Next() ShapeID
}

// RandomPicker picks uniformly from the catalogue.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker creates a picker seeded for reproducible sequences.
func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly random shape.
func (p *RandomPicker) Next() ShapeID {
	return ShapeID(p.rng.Intn(ShapeCount))
}

// SequencePicker replays a fixed list of shapes, cycling when exhausted.
// Useful for tests and puzzle setups.
type SequencePicker struct {
	shapes []ShapeID
	pos    int
}

// NewSequencePicker creates a picker over shapes. An empty list yields ShapeI.
func NewSequencePicker(shapes ...ShapeID) *SequencePicker {
	return &SequencePicker{shapes: shapes}
}

// Next returns the next shape in the sequence.
func (p *SequencePicker) Next() ShapeID {
	if len(p.shapes) == 0 {
		return ShapeI
	}
	s := p.shapes[p.pos%len(p.shapes)]
	p.pos++
	return s
}
