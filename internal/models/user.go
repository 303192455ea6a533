// Package models defines the persisted domain records of Datarium.
package models

// User is a registered account. Records are immutable once created; there is
// no edit or delete path. The password is stored verbatim: authentication is
// a local mock, not a security boundary.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session identifies the currently active user. At most one session exists
// process-wide; it is persisted so it survives a restart.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
