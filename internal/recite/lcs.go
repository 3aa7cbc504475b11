package recite

// lcsMask computes a longest-common-subsequence mask over the attempt units:
// mask[i] is true iff typed[i] participates in an LCS of the two key
// sequences. Equality is exact string equality of keys.
//
// The DP table is a flat (m+1)*(n+1) int buffer indexed by i*(n+1)+j. O(m·n)
// time and space, which is fine for recitation-length inputs; this is not
// built for long documents.
//
// Ties between equally long subsequences are broken deterministically during
// backtracking: a matching key pair is always taken, and otherwise the
// reference index is decremented first, which anchors matches at the earliest
// possible reference positions.
func lcsMask(typed, ref []unit) []bool {
	m, n := len(typed), len(ref)
	mask := make([]bool, m)
	if m == 0 || n == 0 {
		return mask
	}

	dp := make([]int, (m+1)*(n+1))
	idx := func(i, j int) int { return i*(n+1) + j }
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if typed[i-1].key == ref[j-1].key {
				dp[idx(i, j)] = dp[idx(i-1, j-1)] + 1
				continue
			}
			up, left := dp[idx(i-1, j)], dp[idx(i, j-1)]
			if up > left {
				dp[idx(i, j)] = up
			} else {
				dp[idx(i, j)] = left
			}
		}
	}

	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case typed[i-1].key == ref[j-1].key:
			mask[i-1] = true
			i--
			j--
		case dp[idx(i, j-1)] >= dp[idx(i-1, j)]:
			j--
		default:
			i--
		}
	}
	return mask
}
