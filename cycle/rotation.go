package cycle

// minimalRotation implements Booth's algorithm to find the lexicographically
// smallest rotation of s in O(n) time.
func minimalRotation(s []int) []int {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := append(append([]int(nil), s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]int, n)
	for i := 0; i < n; i++ {
		res[i] = doubled[k+i]
	}

	return res
}

func reverseInts(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

func compareInts(a, b []int) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// canonicalForm returns the lexicographically smallest rotation among s
// itself and its reversal, used so two sequences that are rotations or
// mirror images of each other collapse to the same representative.
func canonicalForm(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	rotF := minimalRotation(s)
	rotB := minimalRotation(reverseInts(s))
	if compareInts(rotB, rotF) < 0 {
		return rotB
	}

	return rotF
}

// Equivalent reports whether a and b contain the same node ids in the same
// circular order, up to rotation and reflection.
func Equivalent(a, b *Cycle) bool {
	if a.Len() != b.Len() {
		return false
	}
	ca := canonicalForm(a.nodes)
	cb := canonicalForm(b.nodes)
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}

	return true
}
