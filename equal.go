package dynarray

// IndexOf returns the index of the first element equal to e, or -1 if
// there is none.
func IndexOf[E comparable](a *Array[E], e E) int {
	for i := 0; i < a.size; i++ {
		if a.buf[i] == e {
			return i
		}
	}
	return -1
}

// Contains reports whether an element equal to e is present.
func Contains[E comparable](a *Array[E], e E) bool {
	return IndexOf(a, e) >= 0
}

// RemoveElement removes the first element equal to e. It reports whether an
// element was removed; an absent e is not an error.
func RemoveElement[E comparable](a *Array[E], e E) bool {
	i := IndexOf(a, e)
	if i < 0 {
		return false
	}
	a.remove(i)
	return true
}

// IndexFunc returns the index of the first element satisfying match, or -1.
func (a *Array[E]) IndexFunc(match func(E) bool) int {
	for i := 0; i < a.size; i++ {
		if match(a.buf[i]) {
			return i
		}
	}
	return -1
}

// ContainsFunc reports whether some element satisfies match.
func (a *Array[E]) ContainsFunc(match func(E) bool) bool {
	return a.IndexFunc(match) >= 0
}

// RemoveFunc removes the first element satisfying match and reports whether
// one was found.
func (a *Array[E]) RemoveFunc(match func(E) bool) bool {
	i := a.IndexFunc(match)
	if i < 0 {
		return false
	}
	a.remove(i)
	return true
}
