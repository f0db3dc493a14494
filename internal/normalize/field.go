package normalize

// Field carries a value together with where it came from. Present means the
// sheet had a column for it; Set means the cell was not blank.
type Field[T any] struct {
	Present bool
	Set     bool
	Value   T
}

// Absent is a field whose column is missing from the sheet
func Absent[T any]() Field[T] {
	return Field[T]{}
}

// Blank is a field whose column exists but whose cell is empty
func Blank[T any]() Field[T] {
	return Field[T]{Present: true}
}

// Value is a field with a parsed cell value
func Value[T any](v T) Field[T] {
	return Field[T]{Present: true, Set: true, Value: v}
}

// Merge folds a later occurrence of the same field into f.
// The later value wins only when its cell was not blank.
func (f Field[T]) Merge(later Field[T]) Field[T] {
	if later.Set {
		return later
	}
	if later.Present && !f.Present {
		return later
	}
	return f
}

// Or returns the value, or def when the cell was blank or absent
func (f Field[T]) Or(def T) T {
	if f.Set {
		return f.Value
	}
	return def
}
