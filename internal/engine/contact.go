package engine

// Contact is a birthday read from an address-book export.
type Contact struct {
	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// Birth is the parsed BDAY. Its Year is meaningless unless YearKnown.
	Birth CalendarDate

	// YearKnown is false for truncated vCard dates (--MM-DD).
	// Such contacts cannot have an age computed.
	YearKnown bool
}
