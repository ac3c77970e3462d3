package allocator

// Stats is a point-in-time snapshot of a Context's lifetime counters,
// per spec §3/§4.11: total allocate calls, total free calls, and
// cumulative requested bytes (as the caller originally asked, before
// MinPayload/align4 rounding).
type Stats struct {
	Allocs         uint64
	Frees          uint64
	RequestedBytes int64
}

// Stats returns a copy of ctx's current counters. It never mutates
// state, matching spec §4.11's "read-only snapshot operation."
func (ctx *Context) Stats() Stats {
	return ctx.stats
}
