// Package apperrors provides the application error type used across the admin
// server. Errors carry an HTTP status code, support wrapping for errors.Is /
// errors.As, and can expand their wrapped causes into a single message.
package apperrors

// Error defines the interface for application errors. It extends the standard
// error interface with status code management and error chaining. Methods
// return Error to support chaining.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error      // creates a new error using current as template
	Msg(msg string) Error      // creates a new error with message and wraps original
	Err(err ...error) Error    // attaches additional errors to current error
	SetExpandError(bool) Error // controls whether ErrorAll expands wrapped errors
	SetStatusCode(int) Error   // sets HTTP status code for the error
	StatusCode() int           // returns the current status code
	ErrorAll() string          // returns full message including wrapped errors
	UnwrapAll() []error        // returns all wrapped errors
}
