package history

// Mode controls how Push records a new value.
type Mode uint8

const (
	// ModeNormal appends a new entry on every push.
	ModeNormal Mode = iota

	// ModeBlockStart appends a new entry on the next push, then switches
	// to ModeInBlock.
	ModeBlockStart

	// ModeInBlock overwrites the current entry on every push.
	ModeInBlock
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeBlockStart:
		return "block-start"
	case ModeInBlock:
		return "in-block"
	default:
		return "unknown"
	}
}
