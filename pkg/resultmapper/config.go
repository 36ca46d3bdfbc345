package resultmapper

// CompatConfig gates the placeholder values injected for conformance
// suites that expect states a legacy device cannot truly measure. Each
// toggle always resolves to the same constant regardless of input; none of
// them introduces a state machine.
type CompatConfig struct {
	// ReportAeConverged reports a fixed converged auto-exposure state.
	// The legacy layer has no precapture sequence to observe, so this is
	// the only defined value it can offer.
	ReportAeConverged bool

	// ReportAwbConverged reports a fixed converged auto-white-balance
	// state and echoes the requested awb mode back into the result.
	ReportAwbConverged bool

	// EchoAfMode copies the requested autofocus mode into the result.
	// There is no autofocus state machine behind it.
	EchoAfMode bool
}

// DefaultCompatConfig enables every compatibility report, matching what
// legacy capture stacks shipped with.
func DefaultCompatConfig() CompatConfig {
	return CompatConfig{
		ReportAeConverged:  true,
		ReportAwbConverged: true,
		EchoAfMode:         true,
	}
}
