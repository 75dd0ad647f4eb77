// Package domain contains core concepts of the chat system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "fmt"

// User is a chat participant identified solely by its display name.
// Names are expected to be unique inside a conversation but this is not enforced.
type User struct {
	Username string
}

func NewUser(username string) User {
	return User{Username: username}
}

func (u User) String() string {
	return fmt.Sprintf("User(username='%s')", u.Username)
}
