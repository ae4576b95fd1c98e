// Package options implements the functional option pattern shared by the
// configurable zkwire types (packing parameters, display formatters).
package options

// Option configures a target of type T. Options may reject the value they are
// given; Apply stops at the first rejection.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] struct {
	fn func(T) error
}

// A nil *Func, or one with no function, is a no-op.
func (f *Func[T]) apply(target T) error {
	if f == nil || f.fn == nil {
		return nil
	}

	return f.fn(target)
}

// New creates an option that may fail, e.g. when an argument is out of range.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError creates an option that always succeeds.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		fn: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and returns the first error.
// Nil options, untyped or a nil *Func, are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Build applies opts to target and then runs validate, so that constraints
// spanning several options (e.g. a combined bit width) are checked once all
// of them have been applied.
func Build[T any](target T, validate func(T) error, opts ...Option[T]) (T, error) {
	if err := Apply(target, opts...); err != nil {
		return target, err
	}

	if validate != nil {
		if err := validate(target); err != nil {
			return target, err
		}
	}

	return target, nil
}
