package cfgmst

// NewBuilder exposes the unbuilt constructor so tests can drive each step.
var NewBuilder = newBuilder
