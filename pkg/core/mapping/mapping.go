// Package mapping translates arbitrary caller labels into the dense,
// zero-based integer ids the cover engine operates on, and back. A
// dictionary is built once per run and never mutated during selection,
// so the engine's integer-indexed arrays stay valid.
package mapping

// Dictionary is a bidirectional lookup between labels and dense ids.
// Ids are assigned in insertion order, starting at zero.
type Dictionary[T comparable] struct {
	ids    map[T]int
	labels []T
}

// New creates an empty dictionary.
func New[T comparable]() *Dictionary[T] {
	return &Dictionary[T]{ids: make(map[T]int)}
}

// Add returns the dense id of the label, assigning the next free id if
// the label is new.
func (d *Dictionary[T]) Add(label T) int {
	if id, found := d.ids[label]; found {
		return id
	}
	id := len(d.labels)
	d.ids[label] = id
	d.labels = append(d.labels, label)
	return id
}

// ID returns the dense id of a known label.
func (d *Dictionary[T]) ID(label T) (int, bool) {
	id, found := d.ids[label]
	return id, found
}

// Label returns the label assigned to a dense id.
func (d *Dictionary[T]) Label(id int) (T, bool) {
	if id < 0 || id >= len(d.labels) {
		var zero T
		return zero, false
	}
	return d.labels[id], true
}

// Len returns the number of distinct labels.
func (d *Dictionary[T]) Len() int { return len(d.labels) }

// Labels returns a copy of all labels in dense-id order.
func (d *Dictionary[T]) Labels() []T {
	out := make([]T, len(d.labels))
	copy(out, d.labels)
	return out
}
