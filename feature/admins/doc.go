// Package admins holds the back-office accounts: login, password reset and
// account creation for the CLI.
//
// Login answers "Invalid credentials" whether the email is unknown, the
// account is disabled or the password is wrong.
package admins
