// Package rank provides combinatorial ranking primitives for indexing
// cube piece configurations: factorials, partial permutation and
// combination counts, and bijections between permutations/orientations
// and dense integers.
//
// All functions operate on the small fixed sizes of a 3x3 cube
// (n <= 8), so uint32 covers every value: 8! = 40320 and 3^7 = 2187.
package rank

// Factorial returns n!.
func Factorial(n uint32) uint32 {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}

// Permutations returns nPk = n!/(n-k)!, the number of ordered
// selections of k items from n.
func Permutations(n, k uint32) uint32 {
	return Factorial(n) / Factorial(n-k)
}

// Combinations returns nCk = n!/((n-k)! * k!), the number of unordered
// selections of k items from n. Returns 0 when k > n.
func Combinations(n, k uint32) uint32 {
	if n < k {
		return 0
	}
	return Factorial(n) / (Factorial(n-k) * Factorial(k))
}

// Permutation returns the factorial-number-system rank of perm, a
// permutation of the values 0..len(perm)-1. The identity permutation
// ranks 0; ranks cover [0, len(perm)!).
func Permutation(perm []uint8) uint32 {
	n := len(perm)
	var r uint32
	for i := 0; i < n; i++ {
		// Lehmer digit: how many later entries are smaller
		var smaller uint32
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				smaller++
			}
		}
		r += smaller * Factorial(uint32(n-1-i))
	}
	return r
}

// UnrankPermutation is the inverse of Permutation: it reconstructs the
// permutation of 0..n-1 with the given rank.
func UnrankPermutation(r uint32, n int) []uint8 {
	avail := make([]uint8, n)
	for i := range avail {
		avail[i] = uint8(i)
	}

	perm := make([]uint8, n)
	for i := 0; i < n; i++ {
		f := Factorial(uint32(n - 1 - i))
		d := r / f
		r %= f
		perm[i] = avail[d]
		avail = append(avail[:d], avail[d+1:]...)
	}
	return perm
}

// Orientation returns the base-3 rank of the given twist digits, most
// significant digit first. For 7 digits ranks cover [0, 3^7).
func Orientation(twists []uint8) uint32 {
	var r uint32
	for _, t := range twists {
		r = r*3 + uint32(t)
	}
	return r
}

// UnrankOrientation is the inverse of Orientation: it reconstructs n
// base-3 twist digits from a rank, most significant digit first.
func UnrankOrientation(r uint32, n int) []uint8 {
	twists := make([]uint8, n)
	for i := n - 1; i >= 0; i-- {
		twists[i] = uint8(r % 3)
		r /= 3
	}
	return twists
}
