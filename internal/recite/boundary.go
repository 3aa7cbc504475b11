package recite

// anchor is the winning contiguous alignment of the whole attempt against a
// reference window: typed[0:m) == ref[s:s+m) in comparison keys, with m
// maximized (earliest s wins ties).
type anchor struct {
	s int
	m int
}

// locateAnchor scans every reference position whose key equals the attempt's
// first key and extends a contiguous equality run from it, keeping the
// longest. Returns ok=false when the attempt has no units or its first key
// never occurs in the reference.
//
// The LCS mask shows which attempt units matched somewhere; this answers the
// separate question of whether a contiguous head or tail of the reference was
// skipped entirely.
func locateAnchor(typed, ref []unit) (anchor, bool) {
	if len(typed) == 0 {
		return anchor{}, false
	}
	best := anchor{s: -1}
	for s := 0; s < len(ref); s++ {
		if ref[s].key != typed[0].key {
			continue
		}
		m := 0
		for m < len(typed) && s+m < len(ref) && ref[s+m].key == typed[m].key {
			m++
		}
		if m > best.m {
			best = anchor{s: s, m: m}
			if m == len(typed) {
				break
			}
		}
	}
	if best.s < 0 {
		return anchor{}, false
	}
	return best, true
}
