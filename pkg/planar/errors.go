package planar

import (
	"fmt"
)

// ErrNonInvertibleTransform indicates a coordinate conversion that needs
// the inverse of a model that has none
type ErrNonInvertibleTransform struct {
	Kind   ModelKind
	Reason string
}

func (e *ErrNonInvertibleTransform) Error() string {
	return fmt.Sprintf("non-invertible %v transform: %s", e.Kind, e.Reason)
}

// ErrUnrelatedCoordSys indicates two coordinate systems without a common root
type ErrUnrelatedCoordSys struct{}

func (e *ErrUnrelatedCoordSys) Error() string {
	return "coordinate systems do not share a root"
}

// ErrInvalidRelativePosition indicates a relative position range outside [0, 1]
// or with its start after its end
type ErrInvalidRelativePosition struct {
	Start, End float64
}

func (e *ErrInvalidRelativePosition) Error() string {
	return fmt.Sprintf("invalid relative position range [%g, %g] (must satisfy 0 <= start <= end <= 1)",
		e.Start, e.End)
}

// ErrNotClosed indicates a shape boundary whose start and end differ
type ErrNotClosed struct {
	Shape string
}

func (e *ErrNotClosed) Error() string {
	return fmt.Sprintf("%s boundary is not closed", e.Shape)
}

// ErrUndefinedExtent indicates a bounds query on an extent built from no geometry
type ErrUndefinedExtent struct{}

func (e *ErrUndefinedExtent) Error() string {
	return "extent is undefined"
}

// ErrIndexOutOfRange indicates a leaf or vertex index past the end of a linear
type ErrIndexOutOfRange struct {
	Index, Len int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}
