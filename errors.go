/*------------------------------------------------------------------------------
* errors.go : error taxonomy of the orbit/clock resolution engine
*
* notes  : every unresolved query surfaces one of these, the engine never
*          returns a zeroed or partially populated state vector.
*-----------------------------------------------------------------------------*/

package rinex

import (
	"errors"
	"fmt"
)

var (
	/* keplerian-only operation requested for a GLONASS or SBAS satellite,
	   or cartesian-state operation for a keplerian one */
	ErrBadOperation = errors.New("invalid ephemeris operation")

	/* required orbital field absent from the record */
	ErrMissingData = errors.New("missing data")

	/* kepler solver did not converge within the iteration budget */
	ErrDiverged = errors.New("kepler solver did not converge")
)

/* NotSupportedError reports an operation with no modeled algorithm for the
* constellation or timescale */
type NotSupportedError struct {
	Sys Constellation
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: ephemeris not supported", e.Sys)
}

/* FrameSelectionError reports that no ephemeris frame satisfies the validity
* policy for the requested (satellite, epoch) pair */
type FrameSelectionError struct {
	Epoch     Epoch
	Satellite SV
}

func (e *FrameSelectionError) Error() string {
	return fmt.Sprintf("(%s:%s): failed to select an ephemeris frame", e.Epoch, e.Satellite)
}

/* AlmanacError wraps a failure of the external almanac collaborator ----------*/
type AlmanacError struct {
	Err error
}

func (e *AlmanacError) Error() string {
	return fmt.Sprintf("almanac error: %v", e.Err)
}

func (e *AlmanacError) Unwrap() error {
	return e.Err
}
