package commands

// RunChecks is an exported alias of [runChecks] for testing.
var RunChecks = runChecks
