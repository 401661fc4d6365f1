package cargo3d

import "strconv"

// binID formats the 1-based per-outcome bin counter, e.g. "Container #1".
func binID(k int) string {
	return "Container #" + strconv.Itoa(k)
}
