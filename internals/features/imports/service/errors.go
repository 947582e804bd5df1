// file: internals/features/imports/service/errors.go
package service

import (
	"errors"
	"fmt"
)

// Error kinds per baris. Semua ditangkap jadi entry error batch,
// tidak ada yang boleh menghentikan baris berikutnya.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUnresolvableParent   = errors.New("unresolvable parent")
)

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, name)
}
