// Package variables walks through reassignment, constants and shadowing of
// local variables. Each demo prints the values it observes as it goes.
package variables

import (
	"fmt"
	"io"
)

// ThreeHoursInSeconds is fixed at compile time.
const ThreeHoursInSeconds uint32 = 60 * 60 * 3

// printer remembers the first write error so demos can stay straight-line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Mutability reassigns one variable and prints it before and after.
func Mutability(w io.Writer) error {
	p := &printer{w: w}

	x := 5
	p.line("The value of x is: %d", x)
	x = 6
	p.line("The value of x is: %d", x)

	return p.err
}

// Constant prints ThreeHoursInSeconds.
func Constant(w io.Writer) error {
	p := &printer{w: w}
	p.line("Three hours in seconds: %d", ThreeHoursInSeconds)
	return p.err
}

// Shadowing prints exactly three lines: the outer x, a shadowed x in an inner
// block, and the outer x again after the block ends.
func Shadowing(w io.Writer) error {
	p := &printer{w: w}

	x := 5
	p.line("The value of x is: %d", x)

	{
		x := x + 1
		{
			x := x * 2
			p.line("The value of x in the inner scope is: %d", x)
		}
		p.line("The value of x is: %d", x)
	}

	return p.err
}

// Retyping rebinds a name from a string to its length.
func Retyping(w io.Writer) error {
	p := &printer{w: w}

	spaces := "   "
	{
		spaces := len(spaces)
		p.line("The number of spaces is: %d", spaces)
	}

	return p.err
}

// Walkthrough runs every demo in teaching order.
func Walkthrough(w io.Writer) error {
	for _, demo := range []func(io.Writer) error{Mutability, Constant, Shadowing, Retyping} {
		if err := demo(w); err != nil {
			return err
		}
	}
	return nil
}
