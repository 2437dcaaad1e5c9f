package spectral

import (
	"fmt"
	"strings"
)

// BatchFlag selects how a set of per-spectrum values is matched to a batch.
type BatchFlag int

const (
	// BatchUnspecified requires exactly one value per spectrum.
	BatchUnspecified BatchFlag = iota
	// BatchOn broadcasts a single value to every spectrum of a multi-spectrum batch.
	BatchOn
	// BatchOff requires one value per spectrum and rejects a lone value.
	BatchOff
)

// ParseBatchFlag maps a user supplied flag onto a [BatchFlag].
func ParseBatchFlag(s string) (BatchFlag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unset", "none":
		return BatchUnspecified, nil
	case "true", "batch", "on":
		return BatchOn, nil
	case "false", "single", "off":
		return BatchOff, nil
	default:
		return BatchUnspecified, fmt.Errorf("%w: %q (want true, false or unset)", ErrBatchFlag, s)
	}
}

func (f BatchFlag) String() string {
	switch f {
	case BatchUnspecified:
		return "unset"
	case BatchOn:
		return "true"
	case BatchOff:
		return "false"
	default:
		return fmt.Sprintf("BatchFlag(%d)", int(f))
	}
}

// Broadcast resolves values against a batch of n spectra and returns exactly
// n values, index-aligned with the batch. The input slice is never modified.
func Broadcast(values []float64, n int, flag BatchFlag) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values given", ErrInsufficientValues)
	}

	switch flag {
	case BatchOn:
		if n < 2 {
			return nil, fmt.Errorf("%w: batch mode needs more than one sample, got %d", ErrInsufficientValues, n)
		}
		if len(values) != 1 {
			return nil, fmt.Errorf("%w: batch mode takes a single value, got %d", ErrDimensionMismatch, len(values))
		}
		out := make([]float64, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	case BatchOff:
		if len(values) == 1 {
			return nil, fmt.Errorf("%w: one value per sample is required when batch is false", ErrInsufficientValues)
		}
	case BatchUnspecified:
	default:
		return nil, fmt.Errorf("%w: %d", ErrBatchFlag, int(flag))
	}

	if len(values) != n {
		return nil, fmt.Errorf("%w: %d samples, %d values", ErrDimensionMismatch, n, len(values))
	}
	return append([]float64(nil), values...), nil
}
