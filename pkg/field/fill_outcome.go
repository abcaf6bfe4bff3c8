package field

//go:generate go run github.com/dmarkham/enumer -type FillOutcome -json -output fill_outcome.gen.go

// FillOutcome reports what a fill did with the submitted value.
type FillOutcome int

const (
	// Unfilled is returned alongside an error; the fill did not complete
	Unfilled FillOutcome = iota
	// Filled means every submitted locale was written to its translation
	Filled
	// ValidationSkipped means the submitted value was not a locale mapping and
	// nothing was written
	ValidationSkipped
)
