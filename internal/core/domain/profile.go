package domain

// Profile is the read-only projection rendered on the profile page.
// Age is derived from the stored birthdate and is never persisted.
type Profile struct {
	User *User
	Age  int
}
