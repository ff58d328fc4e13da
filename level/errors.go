package level

import "fmt"

// ParseError is the only failure kind raised while decoding a document.
// Parsing is all-or-nothing: any ParseError aborts the whole parse and no
// partial Level is returned.
type ParseError struct {
	Line int // 1-based line number in the source text
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("level: line %d: %s", e.Line, e.Msg)
}

func parseErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
