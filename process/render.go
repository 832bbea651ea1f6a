package process

import (
	"fmt"
	"io"
)

// printSubprocess writes child's canonical form, parenthesised if child
// binds more loosely than parentPrecedence requires (§4.6): "a sub-term is
// parenthesised iff its precedence exceeds its parent's."
func printSubprocess(w io.Writer, child Process, parentPrecedence int) {
	if child.Precedence() > parentPrecedence {
		io.WriteString(w, "(")
		child.Print(w)
		io.WriteString(w, ")")
		return
	}
	child.Print(w)
}

// isChoiceLike reports whether p's root operator is one of the three
// n-ary, Set-valued operators (external choice, internal choice,
// interleave).
func isChoiceLike(p Process) bool {
	switch p.(type) {
	case *ExternalChoice, *InternalChoice, *Interleave:
		return true
	default:
		return false
	}
}

// printChoiceInfixOperand writes one operand of a binary choice/interleave
// rendering. Besides the ordinary precedence rule, an operand that is
// itself one of the three choice-like operators is always parenthesised
// here even when its own precedence would not otherwise require it: mixed
// nested choices are bracketed in classical CSP typesetting so the reader
// never has to mentally re-derive which operator scopes over which operand.
func printChoiceInfixOperand(w io.Writer, child Process, parentPrecedence int) {
	if child.Precedence() > parentPrecedence || isChoiceLike(child) {
		io.WriteString(w, "(")
		child.Print(w)
		io.WriteString(w, ")")
		return
	}
	child.Print(w)
}

// printChoiceLike renders an n-ary Set-valued operator (§4.6): infix
// notation when the operand set has exactly two members, prefix set
// notation ("op {P1, P2, ...}") otherwise — including the singleton case,
// since a binary infix form has no way to denote a choice of one.
func printChoiceLike(w io.Writer, ps Set, symbol string, precedence int) {
	sorted := ps.Sorted()
	if len(sorted) == 2 {
		printChoiceInfixOperand(w, sorted[0], precedence)
		fmt.Fprintf(w, " %s ", symbol)
		printChoiceInfixOperand(w, sorted[1], precedence)
		return
	}
	fmt.Fprintf(w, "%s {", symbol)
	for i, p := range sorted {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		p.Print(w)
	}
	io.WriteString(w, "}")
}
