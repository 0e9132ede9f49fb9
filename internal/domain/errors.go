package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the caller lacks the capability an operation requires
	ErrUnauthorized = errors.New("unauthorized")

	// ErrCallerNotBaseOwner is returned when a self-service mint is attempted by a caller
	// that does not currently own the referenced base token
	ErrCallerNotBaseOwner = fmt.Errorf("%w: caller does not own base token", ErrUnauthorized)

	// ErrNotAdministrator is returned when an administrative mint is attempted by a caller
	// that is not a registry administrator
	ErrNotAdministrator = fmt.Errorf("%w: caller is not the registry administrator", ErrUnauthorized)

	// ErrDuplicateDerivative is returned when the referenced base token pair has already
	// been claimed by another derivative
	ErrDuplicateDerivative = errors.New("derivative already exists for this base token")

	// ErrBaseTokenNotFound is returned when the external base contract reports that the
	// referenced base token does not exist
	ErrBaseTokenNotFound = errors.New("base token does not exist")

	// ErrTokenNotFound is returned when a query references a derivative token id that was
	// never minted
	ErrTokenNotFound = errors.New("token does not exist")
)
