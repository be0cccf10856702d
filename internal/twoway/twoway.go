// Copyright 2026 The tokdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package twoway implements the Crochemore–Perrin two-way string-matching
// algorithm, generalized from characters to slices of opaque tokens.
//
// Two-way matching finds the first occurrence of a needle x (length m) in a
// haystack t (length n) in O(m) preprocessing time, O(n) search time and O(1)
// auxiliary space. The trick is a critical factorization of the needle: a
// split position ℓ such that the local period of x at ℓ equals the global
// period of x. The critical factorization theorem guarantees such a position
// exists in the first period of x, and it can be computed as the larger of
// the maximal suffixes of x under an order ≤ and its reversal ≥.
//
// Tokens have no natural order, so the order used for the maximal-suffix
// computation is injected as a three-way comparator. Any consistent total
// order yields a correct (if different) critical factorization; callers
// typically supply one manufactured by the order oracle.
//
// During the search, a candidate alignment is verified right half first,
// starting at ℓ+1. On a mismatch at offset i the window shifts by i-ℓ
// positions; periodicity at the critical point guarantees no occurrence is
// skipped. When the needle is periodic at ℓ (its prefix up to ℓ repeats with
// the computed period p), the window shifts by exactly p after a full
// right-half match and the length of the verified suffix is remembered, which
// caps the total number of comparisons at 2n. For non-periodic needles no
// memory is needed and the shift max(ℓ+1, m-ℓ-1)+1 is safe.
//
// ## References
//
// Crochemore, M., Perrin, D. Two-way string-matching. Journal of the ACM
// 38(3), 650-674 (1991). https://doi.org/10.1145/116825.116845
package twoway

// Search returns the smallest index >= start at which needle occurs as a
// contiguous run in haystack, or -1 if there is no such occurrence. cmp must
// be a three-way comparator that returns 0 iff two tokens are equal;
// beyond that, any consistent total order will do.
//
// Search panics if needle is empty: an empty needle has no meaningful
// first occurrence and indicates a bug in the caller.
func Search[T any](haystack, needle []T, start int, cmp func(a, b T) int) int {
	if len(needle) == 0 {
		panic("twoway: empty needle")
	}
	if start < 0 {
		start = 0
	}
	if len(haystack)-start < len(needle) {
		return -1
	}
	text := haystack[start:]

	ell, period := factorize(needle, cmp)

	var pos int
	if periodic(needle, ell, period, cmp) {
		pos = searchPeriodic(text, needle, ell, period, cmp)
	} else {
		pos = searchNonPeriodic(text, needle, ell, cmp)
	}
	if pos < 0 {
		return -1
	}
	return start + pos
}

// factorize computes a critical factorization of x: the index ell of the last
// token of the left factor (-1 if the left factor is empty) and the period of
// the right factor. Of the two maximal suffixes of x, under cmp and under its
// reversal, the one starting later is critical.
func factorize[T any](x []T, cmp func(a, b T) int) (ell, period int) {
	i1, p1 := maxSuffix(x, cmp)
	i2, p2 := maxSuffix(x, func(a, b T) int { return cmp(b, a) })
	if i1 >= i2 {
		return i1, p1
	}
	return i2, p2
}

// maxSuffix returns the index before the start of the maximal suffix of x
// under cmp together with the period of that suffix, using the standard
// two-pointer factorization scan.
func maxSuffix[T any](x []T, cmp func(a, b T) int) (idx, period int) {
	idx = -1
	j, k := 0, 1
	period = 1
	for j+k < len(x) {
		switch c := cmp(x[j+k], x[idx+k]); {
		case c < 0:
			// Suffix starting at idx+1 still wins; x[j..j+k] is part of
			// its periodic continuation.
			j += k
			k = 1
			period = j - idx
		case c > 0:
			// A larger suffix starts at j.
			idx = j
			j = idx + 1
			k = 1
			period = 1
		default:
			if k == period {
				j += period
				k = 1
			} else {
				k++
			}
		}
	}
	return idx, period
}

// periodic reports whether x repeats with the given period across the
// critical point, i.e. whether the prefix up to and including ell matches its
// period-shifted continuation. For a critical factorization ell+period < m
// always holds, so the probe stays in bounds.
func periodic[T any](x []T, ell, period int, cmp func(a, b T) int) bool {
	for i := 0; i <= ell; i++ {
		if cmp(x[i], x[i+period]) != 0 {
			return false
		}
	}
	return true
}

// searchPeriodic is the two-way search loop for needles that are periodic at
// the critical point. memory is the largest needle index known to match at
// the current alignment from a previous period-sized shift, or -1.
func searchPeriodic[T any](t, x []T, ell, period int, cmp func(a, b T) int) int {
	n, m := len(t), len(x)
	memory := -1
	j := 0
	for j <= n-m {
		// Scan the right half forward.
		i := max(ell, memory) + 1
		for i < m && cmp(x[i], t[j+i]) == 0 {
			i++
		}
		if i < m {
			j += i - ell
			memory = -1
			continue
		}
		// Right half matched; verify the left half backward down to the
		// remembered position.
		i = ell
		for i > memory && cmp(x[i], t[j+i]) == 0 {
			i--
		}
		if i <= memory {
			return j
		}
		j += period
		memory = m - period - 1
	}
	return -1
}

// searchNonPeriodic is the two-way search loop for needles that are not
// periodic at the critical point. The local period at the critical point then
// exceeds max(ell+1, m-ell-1), so shifting by that bound plus one is safe and
// no match memory is required.
func searchNonPeriodic[T any](t, x []T, ell int, cmp func(a, b T) int) int {
	n, m := len(t), len(x)
	period := max(ell+1, m-ell-1) + 1
	j := 0
	for j <= n-m {
		i := ell + 1
		for i < m && cmp(x[i], t[j+i]) == 0 {
			i++
		}
		if i < m {
			j += i - ell
			continue
		}
		i = ell
		for i >= 0 && cmp(x[i], t[j+i]) == 0 {
			i--
		}
		if i < 0 {
			return j
		}
		j += period
	}
	return -1
}
