package Records

import "fmt"

// EmptyError is returned when removing from or peeking into an empty container.
type EmptyError struct {
	Op string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("container is empty: cannot %s", e.Op)
}

// FullError is returned when a bounded container, or a hierarchy node that
// already holds two children, rejects an insert. The container is unchanged.
type FullError struct {
	Cap int
}

func (e *FullError) Error() string {
	return fmt.Sprintf("container is full: capacity %d reached", e.Cap)
}

// NotFoundError reports a missing key on paths that return errors rather than
// a boolean.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q not found", e.Key)
}

// CapacityError reports a capacity below 1.
type CapacityError struct {
	Cap int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("invalid capacity %d: must be at least 1", e.Cap)
}
