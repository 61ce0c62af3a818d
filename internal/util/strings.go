package util

// Truncate cuts s to at most n bytes. Non-positive n returns "".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[:n]
}
