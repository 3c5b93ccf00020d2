package store

import "errors"

var (
	ErrPromptNotFound = errors.New("prompt not found")
	ErrStoreInit      = errors.New("prompt store initialization failed")
	ErrStoreOperation = errors.New("prompt store operation failed")
)
