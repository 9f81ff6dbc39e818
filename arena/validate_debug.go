//go:build debug_greedy

package arena

// DebugEnabled reports whether the package was built with the debug_greedy build tag
const DebugEnabled bool = true

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_greedy build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}

// debugPoison overwrites freshly acquired cells with the arena's poison value, so that reads of
// cells the caller never wrote are easy to spot.
// This method no-ops unless the debug_greedy build tag is present.
func debugPoison[T any](a *Arena[T], cells []T) {
	if !a.hasPoison {
		return
	}
	for i := range cells {
		cells[i] = a.poison
	}
}
