package interp

import (
	"fmt"
	"strings"
)

// ArrayEntry holds a DIMensioned array: a fixed dimension vector and flat
// storage of length ∏dimensions, every cell initialized to Empty.
type ArrayEntry struct {
	Dims    []int
	Storage []Value
}

// Dim creates an array with 1 or more dimensions, per §4.4. It fails SYNTAX
// against a keyword/function/constant, fails SYNTAX on re-DIM of an existing
// array, and silently removes a same-named scalar variable.
func (e *Environment) Dim(name string, dims []int) error {
	key := canonical(name)
	if e.isReserved(key) {
		return NewSyntaxError("cannot DIM %q: name is already a constant, function, or keyword", name)
	}
	if _, exists := e.arrays[key]; exists {
		return NewSyntaxError("re-DIM of array %q is not allowed", name)
	}
	size := 1
	for _, d := range dims {
		if d < 0 {
			return NewSyntaxError("DIM %q: dimension size must be non-negative, got %d", name, d)
		}
		size *= d + 1 // DIM A(3) declares indices 0..3, i.e. 4 cells.
	}
	delete(e.variables, key)
	e.arrays[key] = &ArrayEntry{
		Dims:    append([]int(nil), dims...),
		Storage: make([]Value, size),
	}
	return nil
}

// GetArrayEntry returns the named array's entry.
func (e *Environment) GetArrayEntry(name string) (*ArrayEntry, bool) {
	a, ok := e.arrays[canonical(name)]
	return a, ok
}

// ArrayNames returns every registered array name.
func (e *Environment) ArrayNames() []string {
	return keysOf(e.arrays)
}

// offset computes the flat storage offset for indices against a's dims and
// reports an out-of-bounds error naming the declared maxima and requested
// indices (§4.4, pinned further by SPEC_FULL.md).
func (a *ArrayEntry) offset(name string, indices []int) (int, error) {
	if len(indices) != len(a.Dims) {
		return 0, NewSyntaxError("array %q expects %d index(es), got %d", name, len(a.Dims), len(indices))
	}

	offset := 0
	stride := 1
	declared := make([]string, len(a.Dims))
	requested := make([]string, len(indices))
	outOfRange := false

	for i, idx := range indices {
		declared[i] = fmt.Sprintf("%d", a.Dims[i])
		requested[i] = fmt.Sprintf("%d", idx)
		if idx < 0 || idx > a.Dims[i] {
			outOfRange = true
		}
		offset += idx * stride
		stride *= a.Dims[i] + 1
	}

	if outOfRange {
		return 0, NewSyntaxError(
			"subscript out of range: %s(%s) requested, declared %s(%s)",
			name, strings.Join(requested, ","), name, joinRanges(a.Dims))
	}
	return offset, nil
}

func joinRanges(dims []int) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprintf("0..%d", d)
	}
	return strings.Join(parts, ",")
}

// ArrayGet reads the element at indices from the named array.
func (e *Environment) ArrayGet(name string, indices []int) (Value, error) {
	a, ok := e.GetArrayEntry(name)
	if !ok {
		return Empty(), NewSyntaxError("array %q is not declared", name)
	}
	off, err := a.offset(name, indices)
	if err != nil {
		return Empty(), err
	}
	return a.Storage[off], nil
}

// ArraySet writes v into the element at indices in the named array.
func (e *Environment) ArraySet(name string, indices []int, v Value) error {
	a, ok := e.GetArrayEntry(name)
	if !ok {
		return NewSyntaxError("array %q is not declared", name)
	}
	off, err := a.offset(name, indices)
	if err != nil {
		return err
	}
	a.Storage[off] = v
	return nil
}
