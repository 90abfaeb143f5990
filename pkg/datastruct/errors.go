package datastruct

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrNotFound is returned when an operation's reference value is not part of the container.
	ErrNotFound errorkit.Error = "ErrNotFound"
	// ErrInvalidBucketCount is returned when a HashTable is requested with a non-positive bucket count.
	ErrInvalidBucketCount errorkit.Error = "ErrInvalidBucketCount"
)
