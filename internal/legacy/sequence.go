package legacy

import (
	"fmt"
	"strconv"
	"time"
)

// The mainframe stores decision months as a reversed six-digit sequence:
// the stored value is 999999 minus the yyyyMM month, so newer months sort
// first in its fixed-order files. DecodeSequence and EncodeSequence are the
// only places that arithmetic lives; round-trip: Encode(Decode(x)) == x.

// DecodeSequence converts a stored sequence to the decision month, anchored
// to the first day of the month.
func DecodeSequence(seq string) (time.Time, error) {
	n, err := strconv.Atoi(seq)
	if err != nil {
		return time.Time{}, fmt.Errorf("legacy sequence %q is not numeric: %w", seq, err)
	}
	month, err := time.Parse("200601", fmt.Sprintf("%06d", 999999-n))
	if err != nil {
		return time.Time{}, fmt.Errorf("legacy sequence %q does not decode to a month: %w", seq, err)
	}
	return month, nil
}

// EncodeSequence converts a month back to the stored sequence form.
func EncodeSequence(month time.Time) string {
	n, _ := strconv.Atoi(month.Format("200601"))
	return fmt.Sprintf("%06d", 999999-n)
}
