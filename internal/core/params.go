package core

// Parameter describes a single read-only value exposed for display.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a front-end may display.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider exposes a display snapshot of engine state.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
