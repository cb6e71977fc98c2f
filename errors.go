package inject

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	ErrNilFactory         = errors.New("got nil factory")
	ErrNilDeclaration     = errors.New("got nil declaration")
	ErrNilContainer       = errors.New("got nil container")
	ErrCyclicDependency   = errors.New("cyclic dependency")
	ErrTypeMismatch       = errors.New("stored slot type does not match requested type")
	ErrUnresolvedInstance = errors.New("instance could not be resolved")
)

func newTypeMismatchError(name string, stored any, requested reflect.Type) error {
	return &TypeMismatchError{
		Declaration: name,
		Stored:      reflect.TypeOf(stored),
		Requested:   requested,
	}
}

// TypeMismatchError is the panic value of a registry lookup
// that found a slot of unexpected type.
type TypeMismatchError struct {
	Stored      reflect.Type
	Requested   reflect.Type
	Declaration string
}

func (err *TypeMismatchError) Error() string {
	return fmt.Sprintf(
		"%s: %s: stored %s, requested %s",
		err.Declaration,
		ErrTypeMismatch,
		err.Stored,
		err.Requested,
	)
}

func (err *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func newCyclicDependencyError(name string) error {
	return &CyclicDependencyError{Declaration: name}
}

// CyclicDependencyError is returned when a factory of declaration
// (directly or through other declarations) resolves that same declaration.
type CyclicDependencyError struct {
	Declaration string
}

func (err *CyclicDependencyError) Error() string {
	return fmt.Sprintf("%s: factory resolves its own declaration", err.Declaration)
}

func (err *CyclicDependencyError) Unwrap() error {
	return ErrCyclicDependency
}

func newMustGetError(cause error, name string) error {
	return &MustGetError{cause: cause, Declaration: name}
}

// MustGetError is the panic value of Instance.MustGet.
type MustGetError struct {
	cause       error
	Declaration string
}

func (err *MustGetError) Error() string {
	return fmt.Sprintf("%s: %s: %s", err.Declaration, ErrUnresolvedInstance, err.cause)
}

func (err *MustGetError) Unwrap() []error {
	return []error{ErrUnresolvedInstance, err.cause}
}
