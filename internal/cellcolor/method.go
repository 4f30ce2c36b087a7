package cellcolor

import (
	"fmt"
	"strings"
)

// Method selects the reduction applied to a cell.
type Method string

const (
	MethodAverage    Method = "average"     // Per-channel mean (default).
	MethodMode       Method = "mode"        // Most common exact color.
	MethodBlackWhite Method = "black_white" // Luma threshold to #000000 / #FFFFFF.
)

// Methods lists every supported method in help-text order.
var Methods = []Method{MethodAverage, MethodMode, MethodBlackWhite}

// Valid reports whether m is a supported method.
func (m Method) Valid() bool {
	switch m {
	case MethodAverage, MethodMode, MethodBlackWhite:
		return true
	}
	return false
}

// ParseMethod maps user input to a Method. Matching is case-insensitive and
// accepts "black-white" as an alias for black_white.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !m.Valid() {
		return "", fmt.Errorf("invalid method %q (use 'average', 'mode' or 'black_white')", s)
	}
	return m, nil
}
