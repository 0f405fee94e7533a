// File: id_fn.go
// Role: task-ID schemes used by constructors to name task slot k.
// Determinism:
//   - Every scheme is a pure function of the slot index.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the task in slot idx. Constructors call it with idx ≥ 0 only.
type IDFn func(idx int) string

// DefaultIDFn names slot 7 "7".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn names slots 0..25 "A".."Z", for small hand-checked fixtures.
// Panics outside that range.
func LetterIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("builder: LetterIDFn: slot %d outside [0,25]", idx))
	}

	return string(rune('A' + idx))
}

// PrefixIDFn names slot 7 prefix+"7".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// PaddedIDFn names slot 7 prefix+"007" for width 3. Ids of slots below
// 10^width sort lexically in slot order, which keeps map-ordered output
// (go-dag relation maps, sorted log lines) readable. Panics if width < 1.
func PaddedIDFn(prefix string, width int) IDFn {
	if width < 1 {
		panic(fmt.Sprintf("builder: PaddedIDFn: width %d < 1", width))
	}

	return func(idx int) string {
		return fmt.Sprintf("%s%0*d", prefix, width, idx)
	}
}
