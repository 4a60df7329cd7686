// Package auth registers users, checks credentials and keeps the session
// marker in step with both.
//
// Unknown emails and wrong passwords are deliberately indistinguishable to
// callers: both yield domain.ErrInvalidCredentials.
package auth
