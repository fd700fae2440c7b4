// Package response defines the envelope every endpoint answers with and the
// error taxonomy services report through.
//
// Services return *Error values built with Validation, NotFound, Conflict,
// Unauthorized or Internal. Handlers pass any error to Fail, which picks the
// HTTP status from the Kind and writes {success:false, message}. Internal
// causes stay in Err for logging and never reach the client.
package response
