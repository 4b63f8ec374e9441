// Package rocket is an in-process signal/slot event dispatch library: a
// producer (the signal) multicasts typed invocations to a dynamically
// managed list of consumers (slots), returns a collected value, and stays
// safe when the slot list or slot-owning receivers mutate during emission.
//
// Connect a slot to get back a *conn.Connection handle; invoke the signal
// to run every connected, unblocked slot in insertion order and collect
// their return values. See package conn for the handle's lifetime
// operations, package collector for the aggregation strategies, package
// emission for the current-connection/abort-emission primitives a slot can
// call from inside itself, and package dispatch for queued (cross-goroutine)
// delivery in multi-threaded mode.
package rocket
