package parser

import "fmt"

// SyntaxError is a single, non-fatal syntax diagnostic produced when
// the lookahead does not match any alternative a procedure's FIRST
// set predicts. Per spec §4.E this is fatal in the source; this repo
// resolves the open question in §9 by recovering in panic mode
// instead (skip tokens until a ";", a "}" or EOF is reached), so one
// malformed construct does not abort the whole parse.
type SyntaxError struct {
	Row      int
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("#%d : syntax error, unexpected %s", e.Row, e.Got)
	}
	return fmt.Sprintf("#%d : syntax error, missing %s", e.Row, e.Expected)
}
