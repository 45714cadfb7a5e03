package util

import (
	"errors"
	"fmt"
	"strings"
)

const pkgName = "cors"

// NewError is similar to [errors.New],
// but the message of the resulting error is prefixed with "cors: ".
func NewError(text string) error {
	return errors.New(pkgName + ": " + text)
}

// Errorf is similar to [fmt.Errorf],
// but the message of the resulting error is prefixed with "cors: ".
func Errorf(format string, a ...any) error {
	return fmt.Errorf(pkgName+": "+format, a...)
}

// InvalidOriginPatternErr returns an error about invalid origin pattern str.
func InvalidOriginPatternErr(str string) error {
	return Errorf("invalid origin pattern %q", str)
}

// Join writes a human-readable, comma-and-"and"-separated, double-quoted
// enumeration of elems to sb.
func Join(sb *strings.Builder, elems []string) {
	for i, elem := range elems {
		switch {
		case i == 0:
		case i == len(elems)-1 && len(elems) > 2:
			sb.WriteString(", and ")
		case i == len(elems)-1:
			sb.WriteString(" and ")
		default:
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%q", elem)
	}
}
