// Package match ranks catalog search results for an extracted title and
// classifies each outcome as automatic, uncertain or unmatched.
package match

// Status is the identification state of a scanned folder or collection entry.
type Status int

const (
	// StatusNone: no catalog match was found; needs a human or a manual id.
	StatusNone Status = iota

	// StatusAutomatic: exactly one candidate matched the extracted year.
	StatusAutomatic

	// StatusUncertain: candidates exist but none could be picked safely.
	StatusUncertain

	// StatusManual: a human supplied an explicit selection or id override.
	StatusManual

	// StatusSkip: opted out by the user or a rule. Terminal.
	StatusSkip

	// StatusDone: the folder already carries the canonical name. Terminal.
	StatusDone

	// StatusRenamed: the rename transaction committed. Terminal.
	StatusRenamed
)

func (s Status) String() string {
	switch s {
	case StatusAutomatic:
		return "auto"
	case StatusUncertain:
		return "unsure"
	case StatusManual:
		return "manual"
	case StatusSkip:
		return "skip"
	case StatusDone:
		return "done"
	case StatusRenamed:
		return "renamed"
	default:
		return "none"
	}
}

// Icon returns the single-glyph marker used in list output.
func (s Status) Icon() string {
	switch s {
	case StatusAutomatic:
		return "✓"
	case StatusUncertain:
		return "?"
	case StatusManual:
		return "✎"
	case StatusSkip:
		return "⊘"
	case StatusDone:
		return "✔"
	case StatusRenamed:
		return "★"
	default:
		return "✗"
	}
}

// Terminal reports whether no further identification work applies.
func (s Status) Terminal() bool {
	return s == StatusSkip || s == StatusDone || s == StatusRenamed
}

// Selectable reports whether the state carries a confirmed selection that a
// rename may act on.
func (s Status) Selectable() bool {
	return s == StatusAutomatic || s == StatusManual
}
