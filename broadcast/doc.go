/*
Package broadcast fans out structural change events of red-black trees to
any number of subscribers.

A Broadcaster is hooked into a tree through its configuration:

	b := broadcast.New[int](ctx)
	cfg := rbtree.OrderedConfig[int]()
	cfg.Observer = b.Observe
	tree, _ := rbtree.NewWithConfig(cfg)

Subscribers receive events on channels. The tree itself stays single-threaded;
only the delivery of events happens concurrently.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package broadcast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}
