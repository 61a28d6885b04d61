package forMiniTriGo

import (
	"errors"
	"fmt"
)

// Kind is the structural kind of a sparse matrix.
type Kind int

const (
	Undefined Kind = iota
	LowerTriangularKind
	UpperTriangularKind
	IncidenceKind
	TriangleWitnessKind
)

func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case LowerTriangularKind:
		return "lower triangular"
	case UpperTriangularKind:
		return "upper triangular"
	case IncidenceKind:
		return "incidence"
	case TriangleWitnessKind:
		return "triangle witness"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrMissingEdge       = errors.New("edge not in edge index")
	ErrInvalidLevels     = errors.New("k-count histogram needs at least 4 levels")
	ErrInvariant         = errors.New("matrix invariant violated")
)

// violation panics with err wrapped in a formatted message. All contract
// violations of this package end up here.
func violation(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}
