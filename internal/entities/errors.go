// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrGroupNotFound signals missing group.
	ErrGroupNotFound = errors.New("group not found")
	// ErrMateriaNotFound signals missing subject.
	ErrMateriaNotFound = errors.New("materia not found")
	// ErrCarreraNotFound signals missing academic program.
	ErrCarreraNotFound = errors.New("carrera not found")
)
