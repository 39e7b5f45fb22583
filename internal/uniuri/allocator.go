package uniuri

// Allocator hands out random element ids. It implements widget.IDAllocator for pages where ids must not be
// guessable or must not collide across independently rendered fragments.
type Allocator struct {
	// Length of the random part, StdLen when zero.
	Length int
}

// Next returns prefix followed by Length random lower case letters and digits.
func (a Allocator) Next(prefix string) string {
	n := a.Length
	if n <= 0 {
		n = StdLen
	}

	return prefix + NewLenChars(n, IDChars)
}

// Reset is a no-op: random ids have no sequence to restart.
func (a Allocator) Reset() {}
