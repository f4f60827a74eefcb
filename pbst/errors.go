package pbst

import (
	"errors"
)

var ErrDuplicateKey = errors.New("key already exists in tree")

var ErrInvalidTree = errors.New("invalid binary search tree structure")

var ErrInvalidOperation = errors.New("invalid tree operation")
