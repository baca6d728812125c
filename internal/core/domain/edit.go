package domain

// EditOp identifies the kind of query edit.
type EditOp int

// Query edit operations.
const (
	// EditAppend appends Text to the query.
	EditAppend EditOp = iota
	// EditBackspace removes the last character of the query.
	EditBackspace
	// EditClear empties the query.
	EditClear
	// EditReplace replaces the whole query with Text.
	EditReplace
)

// QueryEdit is a discrete change to a session's query buffer.
type QueryEdit struct {
	Op   EditOp
	Text string
}

// Append returns an edit that appends text.
func Append(text string) QueryEdit {
	return QueryEdit{Op: EditAppend, Text: text}
}

// Backspace returns an edit that deletes the last character.
func Backspace() QueryEdit {
	return QueryEdit{Op: EditBackspace}
}

// Clear returns an edit that empties the query.
func Clear() QueryEdit {
	return QueryEdit{Op: EditClear}
}

// Replace returns an edit that sets the query to text.
func Replace(text string) QueryEdit {
	return QueryEdit{Op: EditReplace, Text: text}
}

// Apply returns the query that results from applying the edit to query.
func (e QueryEdit) Apply(query string) string {
	switch e.Op {
	case EditAppend:
		return query + e.Text
	case EditBackspace:
		runes := []rune(query)
		if len(runes) == 0 {
			return query
		}
		return string(runes[:len(runes)-1])
	case EditClear:
		return ""
	case EditReplace:
		return e.Text
	default:
		return query
	}
}
