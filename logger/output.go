package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - Results, errors with hints, final status
//	1 (-v)      - + One line per generated or checked family
//	2 (-vv)     - + Resolved configuration, build and render steps
//	3 (-vvv)    - + Per-shape constructor order

// OutputCategory defines a category of output that can be enabled/disabled.
// Results and errors are always printed and have no category.
type OutputCategory int

const (
	// Level 1 (-v) - Informational
	OutputFamilies OutputCategory = iota // One line per generated or checked family

	// Level 2 (-vv) - Detailed
	OutputConfig // Resolved configuration
	OutputSteps  // Build and render steps

	// Level 3 (-vvv) - Trace
	OutputShapes // Per-shape parameter order
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputFamilies: VerbosityInfo,

	OutputConfig: VerbosityDebug,
	OutputSteps:  VerbosityDebug,

	OutputShapes: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "results and errors only"
	case VerbosityInfo:
		return "results, errors, and one line per family"
	case VerbosityDebug:
		return "above + configuration and render steps"
	case VerbosityTrace:
		return "above + per-shape parameter order"
	default:
		if verbosity > VerbosityTrace {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}
