package backend

import (
	"fmt"
	"strconv"
	"strings"
)

// flexID accepts stop/stand identifiers delivered either as JSON numbers
// or as quoted strings; both normalize to the same int64 at the decode
// boundary, so everything downstream compares plain integers.
type flexID int64

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("flexible id: parse %q: %w", s, err)
	}
	*f = flexID(v)
	return nil
}
