package reservation

import (
	"fmt"
	"regexp"

	"flightdesk/internal/pkg/random"
)

// Code is the human-facing reservation identifier used for check-in and seat
// swaps: two independently drawn 3-digit zero-padded segments concatenated
// into six characters.
type Code string

const codeSegmentBound = 1000

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

func GenerateCode(src random.Source) Code {
	return Code(fmt.Sprintf("%03d%03d", src.Intn(codeSegmentBound), src.Intn(codeSegmentBound)))
}

func ParseCode(s string) (Code, error) {
	if !codePattern.MatchString(s) {
		return "", fmt.Errorf("malformed reservation code %q", s)
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}
