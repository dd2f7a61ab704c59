package domain

import "errors"

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrInvalidUpload    = errors.New("invalid upload")
	ErrImageTooSmall    = errors.New("image too small")
	ErrImageTooLarge    = errors.New("image too large")
)
