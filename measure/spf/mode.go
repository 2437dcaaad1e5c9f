package spf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMode reports an unknown adjusted-SPF operating mode.
var ErrMode = errors.New("spf: unknown mode")

// Mode selects what [Calculator.Adjust] computes.
type Mode int

const (
	// ModeDetermine finds C for each target SPF.
	ModeDetermine Mode = iota + 1
	// ModeApply computes the adjusted SPF for given coefficients.
	ModeApply
	// ModeBoth finds C and then computes the adjusted SPF with it.
	ModeBoth
)

// ParseMode accepts "calc"/"determine", "adj"/"apply" and "all"/"both".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "calc", "determine":
		return ModeDetermine, nil
	case "adj", "apply":
		return ModeApply, nil
	case "all", "both":
		return ModeBoth, nil
	default:
		return 0, fmt.Errorf("%w: %q (want calc, adj or all)", ErrMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeDetermine:
		return "calc"
	case ModeApply:
		return "adj"
	case ModeBoth:
		return "all"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
