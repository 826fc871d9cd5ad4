package scarp_test

// Tags shared by the tests of every kind.
type (
	meter struct{}
	gram  struct{}
)

func ptr[T any](v T) *T { return &v }
