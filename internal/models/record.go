package models

// Record is one unit of text pulled from an input source. It never leaves
// the process; the report carries only RawText.
type Record struct {
	RawText  string
	Location string // e.g. "row 4" or "page 2 line 7"
}
