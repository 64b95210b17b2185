package utils

func ToPointer[T any](value T) *T {
	return &value
}

// TruncateRunes cuts s to at most n runes, keeping multi-byte text intact.
func TruncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
