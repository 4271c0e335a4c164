// Package hello prints the classic first program's single line.
package hello

import (
	"fmt"
	"io"
)

// Greeting is the only line the program prints.
const Greeting = "Hello, world!"

// Run writes Greeting followed by a newline to w.
func Run(w io.Writer) error {
	if _, err := fmt.Fprintln(w, Greeting); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}
	return nil
}
