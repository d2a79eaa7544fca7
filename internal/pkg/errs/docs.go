// Package errs provides the error taxonomy shared by the domain, application and
// transport layers.
//
// Each kind follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct type carrying details
//   - constructors with and without cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter classifies responses by sentinel only: ErrObjectNotFound maps
// to 404, ErrAccessDenied to 403, ErrUnauthenticated to 401, and the value
// errors plus ErrAlreadyExists to 400.
package errs
