package present

import (
	"fmt"
	"io"
)

// Greeting is printed first on every invocation.
const Greeting = "Hi bro. Welcome to the IXCodeRS Project - a dev sandbox for Rust."

// WriteGreeting prints the greeting line.
func WriteGreeting(w io.Writer) error {
	_, err := fmt.Fprintln(w, Greeting)
	return err
}

// Echo prints each argument on its own line, in order.
func Echo(w io.Writer, args []string) error {
	for _, a := range args {
		if _, err := fmt.Fprintln(w, a); err != nil {
			return err
		}
	}
	return nil
}
