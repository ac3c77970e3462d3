package allocator

import (
	"fmt"
	"strings"
)

// DebugPools renders every region in every pool's list, in list order,
// for interactive debugging and for tests that want to assert on
// linkage shape without reaching into package-private fields directly.
// It is a plain string-building debug formatter, not a logging call.
func (ctx *Context) DebugPools() string {
	var b strings.Builder

	for i := range ctx.pools {
		p := &ctx.pools[i]
		fmt.Fprintf(&b, "%s pool: available=%d\n", p.class, p.availableBytes)

		for c := p.head; c.valid(); c = c.header().next {
			h := c.header()
			state := "allocated"
			if h.free {
				state = "free"
			}

			fmt.Fprintf(&b, "  region mapping=%d payload=%d %s\n", h.mappingID, h.payloadSize, state)
		}
	}

	return b.String()
}
