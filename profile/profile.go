package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Profiler describes a file-based profiling session.
type Profiler struct {
	Mode  string // One of [Modes]; empty disables profiling
	Path  string // Output directory; empty selects a temporary directory
	Quiet bool   // Suppress the profiler's own log messages
}

// Start starts profiling and returns a handle for stopping it.
//
// If the pprof build tag or p.Mode are unset, or p.Mode is not one of
// [Modes], Start returns a no-op implementation.
// Both Start and Stop are always safely callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
