// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. A failed or cancelled input skips the step and is forwarded
// unchanged in kind.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate/ValidateAll: turn checks into failures
// - Switch/Map: move from Result[In] to Result[Out]
// - Try: call a function (Out, error) and convert the error to a failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
