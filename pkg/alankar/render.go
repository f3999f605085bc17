package alankar

import (
	"fmt"
	"io"
)

// Separator is printed between the ascending and descending sections
const Separator = "---------------------"

// Render writes one formatted pattern per line
func Render(w io.Writer, r *Result) error {
	for i, seq := range r.Sections() {
		if i > 0 {
			if _, err := fmt.Fprintln(w, Separator); err != nil {
				return err
			}
		}
		for _, line := range seq.Strings() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
