package engine

import (
	"fmt"
	"strings"

	"github.com/physicslab/phyengine/errors"
)

// AnalysisKind selects the engine's solution mode. The numeric values are
// the engine's own.
type AnalysisKind uint32

const (
	AnalysisOP   AnalysisKind = iota // operating point
	AnalysisDC                       // DC sweep
	AnalysisAC                       // AC at a fixed angular frequency
	AnalysisACOP                     // AC about the operating point
	AnalysisTR                       // transient
	AnalysisTROP                     // transient from the operating point
)

var kindNames = [...]string{"OP", "DC", "AC", "ACOP", "TR", "TROP"}

func (k AnalysisKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("AnalysisKind(%d)", uint32(k))
}

func (k AnalysisKind) valid() bool {
	return k <= AnalysisTROP
}

// transient reports whether the kind needs step and stop parameters.
func (k AnalysisKind) transient() bool {
	return k == AnalysisTR || k == AnalysisTROP
}

// frequency reports whether the kind needs an angular frequency.
func (k AnalysisKind) frequency() bool {
	return k == AnalysisAC || k == AnalysisACOP
}

// ParseAnalysisKind maps a kind name ("OP", "DC", "AC", "ACOP", "TR",
// "TROP", any case, surrounding space ignored) to its engine value.
func ParseAnalysisKind(s string) (AnalysisKind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range kindNames {
		if name == n {
			return AnalysisKind(i), nil
		}
	}
	return 0, errors.InvalidAnalysisKind(s)
}
