package models

import "errors"

// ErrAccountNotFound is returned by the repositories and services when no
// account exists for the requested id.
var ErrAccountNotFound = errors.New("account not found")

// Account is the persisted account record. ID is assigned by the store on
// create and never taken from a client payload.
type Account struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Email       string `json:"email,omitempty" db:"email"`
	Address     string `json:"address,omitempty" db:"address"`
	PhoneNumber string `json:"phone_number,omitempty" db:"phone_number"`
}
