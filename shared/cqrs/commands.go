package cqrs

type CreateAccountCommand struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
}

// UpdateAccountCommand overwrites every business field of the account
// identified by ID. The ID itself is never changed.
type UpdateAccountCommand struct {
	ID          int64
	Name        string
	Email       string
	Address     string
	PhoneNumber string
}

type DeleteAccountCommand struct {
	ID int64
}
