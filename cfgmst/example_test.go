package cfgmst_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pbqpcfg/cfg"
	"github.com/katalvlaran/pbqpcfg/cfgmst"
)

// ExampleNew places counters on a loop: entry → body ⟲ → exit.
func ExampleNew() {
	f := cfg.NewFunction("loop")
	for _, name := range []string{"entry", "body", "exit"} {
		if _, err := f.AddBlock(name); err != nil {
			panic(err)
		}
	}
	_ = f.AddEdge("entry", "body")
	_ = f.AddEdge("body", "body")
	_ = f.AddEdge("body", "exit")

	m := cfgmst.New(f)
	_ = m.Dump(os.Stdout, "loop")

	for _, e := range m.InstrumentedEdges() {
		fmt.Printf("counter on %v -> %v\n", e.Src, e.Dst)
	}

	// Output:
	// loop
	//   Number of Basic Blocks: 5
	//   BB: FakeEntry  Index=0
	//   BB: entry  Index=1
	//   BB: body  Index=2
	//   BB: exit  Index=3
	//   BB: FakeExit  Index=4
	//   Number of Edges: 5 (*: Instrument, C: CriticalEdge, -: Removed)
	//   Edge 0: 2-->2 *C  W=2000
	//   Edge 1: 0-->1     W=2
	//   Edge 2: 1-->2     W=2
	//   Edge 3: 2-->3     W=2
	//   Edge 4: 3-->4     W=2
	// counter on body -> body
}
