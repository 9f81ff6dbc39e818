//go:build !debug_greedy

package arena

// DebugEnabled reports whether the package was built with the debug_greedy build tag
const DebugEnabled bool = false

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_greedy build tag is present
func DebugValidate(validatable Validatable) {
}

// debugPoison overwrites freshly acquired cells with the arena's poison value.
// This method no-ops unless the debug_greedy build tag is present.
func debugPoison[T any](a *Arena[T], cells []T) {
}
