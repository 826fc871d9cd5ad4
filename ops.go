package scarp

// Ordered is satisfied by every scarp type V.
type Ordered[V any] interface {
	Compare(V) int
}

// Min returns the smallest of its arguments. Ties keep the first.
func Min[V Ordered[V]](first V, rest ...V) V {
	m := first
	for _, v := range rest {
		if v.Compare(m) < 0 {
			m = v
		}
	}
	return m
}

// Max returns the largest of its arguments. Ties keep the first.
func Max[V Ordered[V]](first V, rest ...V) V {
	m := first
	for _, v := range rest {
		if v.Compare(m) > 0 {
			m = v
		}
	}
	return m
}

type incrementer[V any] interface {
	Inc() V
}

type decrementer[V any] interface {
	Dec() V
}

// PreIncrement replaces *p with p.Inc() and returns the new value, as ++x.
func PreIncrement[V incrementer[V]](p *V) V {
	*p = (*p).Inc()
	return *p
}

// PostIncrement replaces *p with p.Inc() and returns the old value, as x++.
func PostIncrement[V incrementer[V]](p *V) V {
	old := *p
	*p = old.Inc()
	return old
}

// PreDecrement replaces *p with p.Dec() and returns the new value, as --x.
func PreDecrement[V decrementer[V]](p *V) V {
	*p = (*p).Dec()
	return *p
}

// PostDecrement replaces *p with p.Dec() and returns the old value, as x--.
func PostDecrement[V decrementer[V]](p *V) V {
	old := *p
	*p = old.Dec()
	return old
}
