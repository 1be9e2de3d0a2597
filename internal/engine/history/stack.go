package history

// DefaultMaxEntries is the default cap on retained history entries.
const DefaultMaxEntries = 1000

// settings holds construction parameters shared by all stack types.
type settings struct {
	maxEntries int
}

// Option configures a Stack during creation.
type Option func(*settings)

// WithMaxEntries caps the number of retained entries. When a push would
// exceed the cap the oldest entries are evicted; the current entry is
// never evicted. Values below 2 are ignored.
func WithMaxEntries(max int) Option {
	return func(s *settings) {
		if max >= 2 {
			s.maxEntries = max
		}
	}
}

// Stack is a linear undo/redo history over values of type T.
//
// The entry list is never empty: a stack is seeded with one initial value
// and entries[cursor] is always the current state. Entries past the
// cursor are redo-able futures and are discarded by the next
// non-overwriting push.
//
// Stack is not internally synchronized; callers drive one stack from one
// goroutine or serialize access themselves.
type Stack[T any] struct {
	entries    []T
	cursor     int
	mode       Mode
	maxEntries int
}

// New creates a stack seeded with the given initial value.
func New[T any](initial T, opts ...Option) *Stack[T] {
	s := settings{maxEntries: DefaultMaxEntries}
	for _, opt := range opts {
		opt(&s)
	}
	return &Stack[T]{
		entries:    []T{initial},
		maxEntries: s.maxEntries,
	}
}

// Current returns the value at the cursor.
func (s *Stack[T]) Current() T {
	return s.entries[s.cursor]
}

// Push records a new value according to the current mode.
//
// In ModeNormal it truncates entries past the cursor, appends v, and
// advances the cursor. In ModeBlockStart it does the same and then enters
// ModeInBlock. In ModeInBlock it overwrites the current entry in place:
// no truncation, no cursor movement, no growth.
func (s *Stack[T]) Push(v T) {
	switch s.mode {
	case ModeInBlock:
		s.entries[s.cursor] = v
		return
	case ModeBlockStart:
		s.mode = ModeInBlock
	}

	s.entries = append(s.entries[:s.cursor+1], v)
	s.cursor++

	if excess := len(s.entries) - s.maxEntries; excess > 0 {
		// Evict oldest, keeping at least the current entry.
		if excess > s.cursor {
			excess = s.cursor
		}
		if excess > 0 {
			s.entries = append(s.entries[:0], s.entries[excess:]...)
			s.cursor -= excess
		}
	}
}

// Undo moves the cursor one entry back. It clamps at the oldest entry and
// reports whether the cursor moved. Mode is not consulted.
func (s *Stack[T]) Undo() bool {
	if s.cursor < 1 {
		return false
	}
	s.cursor--
	return true
}

// Redo moves the cursor one entry forward. It clamps at the newest entry
// and reports whether the cursor moved. Mode is not consulted.
func (s *Stack[T]) Redo() bool {
	if s.cursor >= len(s.entries)-1 {
		return false
	}
	s.cursor++
	return true
}

// BeginBlock switches to ModeBlockStart from any mode.
func (s *Stack[T]) BeginBlock() {
	s.mode = ModeBlockStart
}

// EndBlock switches to ModeNormal from any mode. Idempotent.
func (s *Stack[T]) EndBlock() {
	s.mode = ModeNormal
}

// Mode returns the current push mode.
func (s *Stack[T]) Mode() Mode {
	return s.mode
}

// Len returns the number of retained entries.
func (s *Stack[T]) Len() int {
	return len(s.entries)
}

// Cursor returns the index of the current entry.
func (s *Stack[T]) Cursor() int {
	return s.cursor
}

// CanUndo reports whether an undo would move the cursor.
func (s *Stack[T]) CanUndo() bool {
	return s.cursor > 0
}

// CanRedo reports whether a redo would move the cursor.
func (s *Stack[T]) CanRedo() bool {
	return s.cursor < len(s.entries)-1
}
