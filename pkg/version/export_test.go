package version

// Resolve is an exported alias of [resolve] for testing.
var Resolve = resolve
