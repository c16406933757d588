package index

import "cmp"

// Union merges two ascending, duplicate-free slices (logical OR).
//
// If one side is empty the other side is returned as is, without copying.
func Union[P cmp.Ordered](lhs, rhs []P) []P {
	if len(lhs) == 0 {
		return rhs
	}
	if len(rhs) == 0 {
		return lhs
	}

	out := make([]P, 0, len(lhs)+len(rhs))
	li, ri := 0, 0

	for li < len(lhs) && ri < len(rhs) {
		l, r := lhs[li], rhs[ri]
		switch {
		case l == r:
			out = append(out, l)
			li++
			ri++
		case l < r:
			out = append(out, l)
			li++
		default:
			out = append(out, r)
			ri++
		}
	}

	out = append(out, lhs[li:]...)
	return append(out, rhs[ri:]...)
}

// Intersection merges two ascending, duplicate-free slices (logical AND).
func Intersection[P cmp.Ordered](lhs, rhs []P) []P {
	if len(lhs) == 0 || len(rhs) == 0 {
		return nil
	}

	out := make([]P, 0, min(len(lhs), len(rhs)))
	li, ri := 0, 0

	for li < len(lhs) && ri < len(rhs) {
		l, r := lhs[li], rhs[ri]
		switch {
		case l == r:
			out = append(out, l)
			li++
			ri++
		case l < r:
			li++
		default:
			ri++
		}
	}

	return out
}
