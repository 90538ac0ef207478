package models

import "errors"

var (
	// ErrInvalidType возвращается при неизвестном типе ресурса
	ErrInvalidType = errors.New("invalid resource type")

	// ErrInvalidStatus возвращается при неизвестном статусе ресурса
	ErrInvalidStatus = errors.New("invalid resource status")
)
