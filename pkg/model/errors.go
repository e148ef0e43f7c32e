package model

import "errors"

// ErrInputInfeasible is the sentinel behind every InputInfeasible error in
// the error taxonomy of spec.md §7. Snapshot.Validate returns it, before
// search begins, when the snapshot carries no courses; it is never raised
// mid-run. A session requirement with no qualified faculty or no suitable
// room is not reported through this error: construction emits no gene for
// it and the fitness evaluator counts it as a missing session.
var ErrInputInfeasible = errors.New("input infeasible")
