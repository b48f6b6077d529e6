package cfgmst

import (
	"fmt"
	"io"

	"tlog.app/go/errors"
)

// Dump writes a human-readable listing of nodes and edges:
//
//	<message>
//	  Number of Basic Blocks: N
//	  BB: <name>  Index=i
//	  Number of Edges: E (*: Instrument, C: CriticalEdge, -: Removed)
//	  Edge k: a-->b<flags>  W=w
//
// The message line is omitted when empty.
func (m *MST) Dump(w io.Writer, message string) (err error) {
	p := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	if message != "" {
		p("%s\n", message)
	}

	p("  Number of Basic Blocks: %d\n", len(m.nodes))
	for i, n := range m.nodes {
		p("  BB: %s  %v\n", n, m.infos[i])
	}

	p("  Number of Edges: %d (*: Instrument, C: CriticalEdge, -: Removed)\n", len(m.edges))
	for k, e := range m.edges {
		p("  Edge %d: %d-->%d%s\n", k, m.index[e.Src], m.index[e.Dst], e.InfoString())
	}

	if err != nil {
		return errors.Wrap(err, "dump")
	}

	return nil
}
