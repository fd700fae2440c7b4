// Package auth issues and verifies admin JWTs and hashes admin passwords.
//
// Tokens are HS256-signed with the configured secret, carry the admin id and
// email, and expire after Config.JWTExpiresIn. Passwords are stored as bcrypt
// hashes with cost PasswordCost.
package auth
