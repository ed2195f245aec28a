package utils

import "github.com/aarondl/null/v8"

func SafeDeref[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}

func ToPtr[T any](v T) *T {
	return &v
}

// NullInt64Ptr переводит необязательную ссылку в указатель для JSON-ответов.
func NullInt64Ptr(n null.Int64) *int64 {
	if !n.Valid {
		return nil
	}
	return &n.Int64
}
