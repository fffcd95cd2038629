package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeCodeExists    = errors.New("employee id already exists")
	ErrInvalidEmploymentType = errors.New("invalid employment type")
)
