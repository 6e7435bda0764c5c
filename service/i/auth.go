package i

import (
	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// Authenticator registers users and signs them in.
type Authenticator interface {
	Register(string, string) error
	SignIn(string, string) (*dmn.User, string, error)
}
