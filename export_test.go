package scarp

// Test-only exports for internal functions.
var (
	HashFloat     = hashFloat
	LastIndexFold = lastIndexFold
)
