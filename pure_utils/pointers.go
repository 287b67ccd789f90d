package pure_utils

func PtrValueOrDefault[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

func Ptr[T any](value T) *T {
	return &value
}
