// Code generated by cmd/gensignal from tmpl.go; arities 0 through 4.
// Regenerate with `go run ./cmd/gensignal`. DO NOT EDIT.

package rocket

import (
	"cmp"
	"errors"

	"github.com/fayce66/rocket/collector"
	"github.com/fayce66/rocket/conn"
	"github.com/fayce66/rocket/emission"
)

// ---------------------------------------------------------------------
// Arity 0
// ---------------------------------------------------------------------

// Signal0 is a signal whose slots take no arguments and return R.
type Signal0[R any] struct{ *core }

// NewSignal0 constructs an empty signal with the given threading policy.
func NewSignal0[R any](policy Policy) *Signal0[R] {
	return &Signal0[R]{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *Signal0[R]) Connect(slot func() R, flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t,
// so it disconnects automatically when t.Close runs.
func (s *Signal0[R]) ConnectTracked(t *conn.Trackable, slot func() R, flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

func (s *Signal0[R]) emit(collect func(R)) error {
	core := s.core
	core.lock()
	endAbort := emission.BeginEmission()
	defer endAbort()

	current := core.lst.Head().Next()
	end := core.lst.Tail()
	var errs []error

	for current != end {
		rec := current.Value
		if current.Connected() && !rec.Blocked() {
			handle := conn.NewConnection(current, core.lst)
			endSlot := emission.BeginSlot(handle)
			core.unlock()
			ret, err := runNode(rec, core.CollectErrors, func() R {
				return rec.Slot.(func() R)()
			})
			core.lock()
			endSlot()
			if err != nil {
				errs = append(errs, err)
			}
			if collect != nil {
				collect(ret)
			}
			if emission.Aborted() {
				current = current.Next()
				break
			}
		}
		current = current.Next()
	}
	core.unlock()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Invoke runs every connected, unblocked slot in insertion order and returns
// the last value seen, wrapped in an Optional that is invalid if no slot ran.
func (s *Signal0[R]) Invoke() (collector.Optional[R], error) {
	var col collector.Default[R]
	err := s.emit(col.Collect)
	return col.Result(), err
}

// InvokeFirst is like Invoke but keeps the first value seen.
func (s *Signal0[R]) InvokeFirst() (collector.Optional[R], error) {
	var col collector.First[R]
	err := s.emit(col.Collect)
	return col.Result(), err
}

// InvokeRange is like Invoke but returns every value seen, in emission order.
func (s *Signal0[R]) InvokeRange() ([]R, error) {
	var col collector.Range[R]
	err := s.emit(col.Collect)
	return col.Result(), err
}

// Emit invokes the signal with the default collector and discards the
// result, surfacing only a slot-invocation error if one occurred.
func (s *Signal0[R]) Emit() error {
	_, err := s.Invoke()
	return err
}

// InvokeWith0 invokes s, aggregating slot return values with col and
// returning col's result — the override hook for a caller-supplied
// collector.Collector instead of one of the built-in strategies above.
func InvokeWith0[R, Out any](s *Signal0[R], col collector.Collector[R, Out]) (Out, error) {
	err := s.emit(col.Collect)
	return col.Result(), err
}

// Min0 invokes s and keeps the smallest value seen.
func Min0[R cmp.Ordered](s *Signal0[R]) (collector.Optional[R], error) {
	var col collector.Minimum[R]
	err := s.emit(col.Collect)
	return col.Result(), err
}

// Max0 invokes s and keeps the largest value seen.
func Max0[R cmp.Ordered](s *Signal0[R]) (collector.Optional[R], error) {
	var col collector.Maximum[R]
	err := s.emit(col.Collect)
	return col.Result(), err
}

// VoidSignal0 is a signal whose slots take no arguments and return nothing.
type VoidSignal0 struct{ *core }

// NewVoidSignal0 constructs an empty signal with the given threading policy.
func NewVoidSignal0(policy Policy) *VoidSignal0 {
	return &VoidSignal0{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *VoidSignal0) Connect(slot func(), flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t.
func (s *VoidSignal0) ConnectTracked(t *conn.Trackable, slot func(), flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

// Emit runs every connected, unblocked slot in insertion order.
func (s *VoidSignal0) Emit() error {
	core := s.core
	core.lock()
	endAbort := emission.BeginEmission()
	defer endAbort()

	current := core.lst.Head().Next()
	end := core.lst.Tail()
	var errs []error

	for current != end {
		rec := current.Value
		if current.Connected() && !rec.Blocked() {
			handle := conn.NewConnection(current, core.lst)
			endSlot := emission.BeginSlot(handle)
			core.unlock()
			err := runNodeVoid(rec, core.CollectErrors, func() {
				rec.Slot.(func())()
			})
			core.lock()
			endSlot()
			if err != nil {
				errs = append(errs, err)
			}
			if emission.Aborted() {
				current = current.Next()
				break
			}
		}
		current = current.Next()
	}
	core.unlock()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ---------------------------------------------------------------------
// Arity 1
// ---------------------------------------------------------------------

// Signal1 is a signal whose slots take one argument and return R.
type Signal1[A, R any] struct{ *core }

// NewSignal1 constructs an empty signal with the given threading policy.
func NewSignal1[A, R any](policy Policy) *Signal1[A, R] {
	return &Signal1[A, R]{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *Signal1[A, R]) Connect(slot func(A) R, flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t.
func (s *Signal1[A, R]) ConnectTracked(t *conn.Trackable, slot func(A) R, flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

func (s *Signal1[A, R]) emit(a A, collect func(R)) error {
	core := s.core
	core.lock()
	endAbort := emission.BeginEmission()
	defer endAbort()

	current := core.lst.Head().Next()
	end := core.lst.Tail()
	var errs []error

	for current != end {
		rec := current.Value
		if current.Connected() && !rec.Blocked() {
			handle := conn.NewConnection(current, core.lst)
			endSlot := emission.BeginSlot(handle)
			core.unlock()
			ret, err := runNode(rec, core.CollectErrors, func() R {
				return rec.Slot.(func(A) R)(a)
			})
			core.lock()
			endSlot()
			if err != nil {
				errs = append(errs, err)
			}
			if collect != nil {
				collect(ret)
			}
			if emission.Aborted() {
				current = current.Next()
				break
			}
		}
		current = current.Next()
	}
	core.unlock()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Invoke runs every connected, unblocked slot in insertion order and returns
// the last value seen, wrapped in an Optional that is invalid if no slot ran.
func (s *Signal1[A, R]) Invoke(a A) (collector.Optional[R], error) {
	var col collector.Default[R]
	err := s.emit(a, col.Collect)
	return col.Result(), err
}

// InvokeFirst is like Invoke but keeps the first value seen.
func (s *Signal1[A, R]) InvokeFirst(a A) (collector.Optional[R], error) {
	var col collector.First[R]
	err := s.emit(a, col.Collect)
	return col.Result(), err
}

// InvokeRange is like Invoke but returns every value seen, in emission order.
func (s *Signal1[A, R]) InvokeRange(a A) ([]R, error) {
	var col collector.Range[R]
	err := s.emit(a, col.Collect)
	return col.Result(), err
}

// Emit invokes the signal with the default collector and discards the result.
func (s *Signal1[A, R]) Emit(a A) error {
	_, err := s.Invoke(a)
	return err
}

// InvokeWith1 invokes s, aggregating slot return values with col and
// returning col's result.
func InvokeWith1[A, R, Out any](s *Signal1[A, R], a A, col collector.Collector[R, Out]) (Out, error) {
	err := s.emit(a, col.Collect)
	return col.Result(), err
}

// Min1 invokes s and keeps the smallest value seen.
func Min1[A any, R cmp.Ordered](s *Signal1[A, R], a A) (collector.Optional[R], error) {
	var col collector.Minimum[R]
	err := s.emit(a, col.Collect)
	return col.Result(), err
}

// Max1 invokes s and keeps the largest value seen.
func Max1[A any, R cmp.Ordered](s *Signal1[A, R], a A) (collector.Optional[R], error) {
	var col collector.Maximum[R]
	err := s.emit(a, col.Collect)
	return col.Result(), err
}

// VoidSignal1 is a signal whose slots take one argument and return nothing.
type VoidSignal1[A any] struct{ *core }

// NewVoidSignal1 constructs an empty signal with the given threading policy.
func NewVoidSignal1[A any](policy Policy) *VoidSignal1[A] {
	return &VoidSignal1[A]{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *VoidSignal1[A]) Connect(slot func(A), flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t.
func (s *VoidSignal1[A]) ConnectTracked(t *conn.Trackable, slot func(A), flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

// Emit runs every connected, unblocked slot in insertion order.
func (s *VoidSignal1[A]) Emit(a A) error {
	core := s.core
	core.lock()
	endAbort := emission.BeginEmission()
	defer endAbort()

	current := core.lst.Head().Next()
	end := core.lst.Tail()
	var errs []error

	for current != end {
		rec := current.Value
		if current.Connected() && !rec.Blocked() {
			handle := conn.NewConnection(current, core.lst)
			endSlot := emission.BeginSlot(handle)
			core.unlock()
			err := runNodeVoid(rec, core.CollectErrors, func() {
				rec.Slot.(func(A))(a)
			})
			core.lock()
			endSlot()
			if err != nil {
				errs = append(errs, err)
			}
			if emission.Aborted() {
				current = current.Next()
				break
			}
		}
		current = current.Next()
	}
	core.unlock()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ---------------------------------------------------------------------
// Arity 2
// ---------------------------------------------------------------------

// Signal2 is a signal whose slots take two arguments and return R.
type Signal2[A, B, R any] struct{ *core }

// NewSignal2 constructs an empty signal with the given threading policy.
func NewSignal2[A, B, R any](policy Policy) *Signal2[A, B, R] {
	return &Signal2[A, B, R]{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *Signal2[A, B, R]) Connect(slot func(A, B) R, flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t.
func (s *Signal2[A, B, R]) ConnectTracked(t *conn.Trackable, slot func(A, B) R, flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

func (s *Signal2[A, B, R]) emit(a A, b B, collect func(R)) error {
	core := s.core
	core.lock()
	endAbort := emission.BeginEmission()
	defer endAbort()

	current := core.lst.Head().Next()
	end := core.lst.Tail()
	var errs []error

	for current != end {
		rec := current.Value
		if current.Connected() && !rec.Blocked() {
			handle := conn.NewConnection(current, core.lst)
			endSlot := emission.BeginSlot(handle)
			core.unlock()
			ret, err := runNode(rec, core.CollectErrors, func() R {
				return rec.Slot.(func(A, B) R)(a, b)
			})
			core.lock()
			endSlot()
			if err != nil {
				errs = append(errs, err)
			}
			if collect != nil {
				collect(ret)
			}
			if emission.Aborted() {
				current = current.Next()
				break
			}
		}
		current = current.Next()
	}
	core.unlock()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Invoke runs every connected, unblocked slot in insertion order and returns
// the last value seen, wrapped in an Optional that is invalid if no slot ran.
func (s *Signal2[A, B, R]) Invoke(a A, b B) (collector.Optional[R], error) {
	var col collector.Default[R]
	err := s.emit(a, b, col.Collect)
	return col.Result(), err
}

// InvokeFirst is like Invoke but keeps the first value seen.
func (s *Signal2[A, B, R]) InvokeFirst(a A, b B) (collector.Optional[R], error) {
	var col collector.First[R]
	err := s.emit(a, b, col.Collect)
	return col.Result(), err
}

// InvokeRange is like Invoke but returns every value seen, in emission order.
func (s *Signal2[A, B, R]) InvokeRange(a A, b B) ([]R, error) {
	var col collector.Range[R]
	err := s.emit(a, b, col.Collect)
	return col.Result(), err
}

// Emit invokes the signal with the default collector and discards the result.
func (s *Signal2[A, B, R]) Emit(a A, b B) error {
	_, err := s.Invoke(a, b)
	return err
}

// InvokeWith2 invokes s, aggregating slot return values with col and
// returning col's result.
func InvokeWith2[A, B, R, Out any](s *Signal2[A, B, R], a A, b B, col collector.Collector[R, Out]) (Out, error) {
	err := s.emit(a, b, col.Collect)
	return col.Result(), err
}

// Min2 invokes s and keeps the smallest value seen.
func Min2[A, B any, R cmp.Ordered](s *Signal2[A, B, R], a A, b B) (collector.Optional[R], error) {
	var col collector.Minimum[R]
	err := s.emit(a, b, col.Collect)
	return col.Result(), err
}

// Max2 invokes s and keeps the largest value seen.
func Max2[A, B any, R cmp.Ordered](s *Signal2[A, B, R], a A, b B) (collector.Optional[R], error) {
	var col collector.Maximum[R]
	err := s.emit(a, b, col.Collect)
	return col.Result(), err
}

// VoidSignal2 is a signal whose slots take two arguments and return nothing.
type VoidSignal2[A, B any] struct{ *core }

// NewVoidSignal2 constructs an empty signal with the given threading policy.
func NewVoidSignal2[A, B any](policy Policy) *VoidSignal2[A, B] {
	return &VoidSignal2[A, B]{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *VoidSignal2[A, B]) Connect(slot func(A, B), flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t.
func (s *VoidSignal2[A, B]) ConnectTracked(t *conn.Trackable, slot func(A, B), flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

// Emit runs every connected, unblocked slot in insertion order.
func (s *VoidSignal2[A, B]) Emit(a A, b B) error {
	core := s.core
	core.lock()
	endAbort := emission.BeginEmission()
	defer endAbort()

	current := core.lst.Head().Next()
	end := core.lst.Tail()
	var errs []error

	for current != end {
		rec := current.Value
		if current.Connected() && !rec.Blocked() {
			handle := conn.NewConnection(current, core.lst)
			endSlot := emission.BeginSlot(handle)
			core.unlock()
			err := runNodeVoid(rec, core.CollectErrors, func() {
				rec.Slot.(func(A, B))(a, b)
			})
			core.lock()
			endSlot()
			if err != nil {
				errs = append(errs, err)
			}
			if emission.Aborted() {
				current = current.Next()
				break
			}
		}
		current = current.Next()
	}
	core.unlock()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ---------------------------------------------------------------------
// Arity 3
// ---------------------------------------------------------------------

// Signal3 is a signal whose slots take three arguments and return R.
type Signal3[A, B, C, R any] struct{ *core }

// NewSignal3 constructs an empty signal with the given threading policy.
func NewSignal3[A, B, C, R any](policy Policy) *Signal3[A, B, C, R] {
	return &Signal3[A, B, C, R]{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *Signal3[A, B, C, R]) Connect(slot func(A, B, C) R, flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t.
func (s *Signal3[A, B, C, R]) ConnectTracked(t *conn.Trackable, slot func(A, B, C) R, flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

func (s *Signal3[A, B, C, R]) emit(a A, b B, c C, collect func(R)) error {
	core := s.core
	core.lock()
	endAbort := emission.BeginEmission()
	defer endAbort()

	current := core.lst.Head().Next()
	end := core.lst.Tail()
	var errs []error

	for current != end {
		rec := current.Value
		if current.Connected() && !rec.Blocked() {
			handle := conn.NewConnection(current, core.lst)
			endSlot := emission.BeginSlot(handle)
			core.unlock()
			ret, err := runNode(rec, core.CollectErrors, func() R {
				return rec.Slot.(func(A, B, C) R)(a, b, c)
			})
			core.lock()
			endSlot()
			if err != nil {
				errs = append(errs, err)
			}
			if collect != nil {
				collect(ret)
			}
			if emission.Aborted() {
				current = current.Next()
				break
			}
		}
		current = current.Next()
	}
	core.unlock()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Invoke runs every connected, unblocked slot in insertion order and returns
// the last value seen, wrapped in an Optional that is invalid if no slot ran.
func (s *Signal3[A, B, C, R]) Invoke(a A, b B, c C) (collector.Optional[R], error) {
	var col collector.Default[R]
	err := s.emit(a, b, c, col.Collect)
	return col.Result(), err
}

// InvokeFirst is like Invoke but keeps the first value seen.
func (s *Signal3[A, B, C, R]) InvokeFirst(a A, b B, c C) (collector.Optional[R], error) {
	var col collector.First[R]
	err := s.emit(a, b, c, col.Collect)
	return col.Result(), err
}

// InvokeRange is like Invoke but returns every value seen, in emission order.
func (s *Signal3[A, B, C, R]) InvokeRange(a A, b B, c C) ([]R, error) {
	var col collector.Range[R]
	err := s.emit(a, b, c, col.Collect)
	return col.Result(), err
}

// Emit invokes the signal with the default collector and discards the result.
func (s *Signal3[A, B, C, R]) Emit(a A, b B, c C) error {
	_, err := s.Invoke(a, b, c)
	return err
}

// InvokeWith3 invokes s, aggregating slot return values with col and
// returning col's result.
func InvokeWith3[A, B, C, R, Out any](s *Signal3[A, B, C, R], a A, b B, c C, col collector.Collector[R, Out]) (Out, error) {
	err := s.emit(a, b, c, col.Collect)
	return col.Result(), err
}

// Min3 invokes s and keeps the smallest value seen.
func Min3[A, B, C any, R cmp.Ordered](s *Signal3[A, B, C, R], a A, b B, c C) (collector.Optional[R], error) {
	var col collector.Minimum[R]
	err := s.emit(a, b, c, col.Collect)
	return col.Result(), err
}

// Max3 invokes s and keeps the largest value seen.
func Max3[A, B, C any, R cmp.Ordered](s *Signal3[A, B, C, R], a A, b B, c C) (collector.Optional[R], error) {
	var col collector.Maximum[R]
	err := s.emit(a, b, c, col.Collect)
	return col.Result(), err
}

// VoidSignal3 is a signal whose slots take three arguments and return nothing.
type VoidSignal3[A, B, C any] struct{ *core }

// NewVoidSignal3 constructs an empty signal with the given threading policy.
func NewVoidSignal3[A, B, C any](policy Policy) *VoidSignal3[A, B, C] {
	return &VoidSignal3[A, B, C]{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *VoidSignal3[A, B, C]) Connect(slot func(A, B, C), flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t.
func (s *VoidSignal3[A, B, C]) ConnectTracked(t *conn.Trackable, slot func(A, B, C), flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

// Emit runs every connected, unblocked slot in insertion order.
func (s *VoidSignal3[A, B, C]) Emit(a A, b B, c C) error {
	core := s.core
	core.lock()
	endAbort := emission.BeginEmission()
	defer endAbort()

	current := core.lst.Head().Next()
	end := core.lst.Tail()
	var errs []error

	for current != end {
		rec := current.Value
		if current.Connected() && !rec.Blocked() {
			handle := conn.NewConnection(current, core.lst)
			endSlot := emission.BeginSlot(handle)
			core.unlock()
			err := runNodeVoid(rec, core.CollectErrors, func() {
				rec.Slot.(func(A, B, C))(a, b, c)
			})
			core.lock()
			endSlot()
			if err != nil {
				errs = append(errs, err)
			}
			if emission.Aborted() {
				current = current.Next()
				break
			}
		}
		current = current.Next()
	}
	core.unlock()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ---------------------------------------------------------------------
// Arity 4
// ---------------------------------------------------------------------

// Signal4 is a signal whose slots take four arguments and return R.
type Signal4[A, B, C, D, R any] struct{ *core }

// NewSignal4 constructs an empty signal with the given threading policy.
func NewSignal4[A, B, C, D, R any](policy Policy) *Signal4[A, B, C, D, R] {
	return &Signal4[A, B, C, D, R]{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *Signal4[A, B, C, D, R]) Connect(slot func(A, B, C, D) R, flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t.
func (s *Signal4[A, B, C, D, R]) ConnectTracked(t *conn.Trackable, slot func(A, B, C, D) R, flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

func (s *Signal4[A, B, C, D, R]) emit(a A, b B, c C, d D, collect func(R)) error {
	core := s.core
	core.lock()
	endAbort := emission.BeginEmission()
	defer endAbort()

	current := core.lst.Head().Next()
	end := core.lst.Tail()
	var errs []error

	for current != end {
		rec := current.Value
		if current.Connected() && !rec.Blocked() {
			handle := conn.NewConnection(current, core.lst)
			endSlot := emission.BeginSlot(handle)
			core.unlock()
			ret, err := runNode(rec, core.CollectErrors, func() R {
				return rec.Slot.(func(A, B, C, D) R)(a, b, c, d)
			})
			core.lock()
			endSlot()
			if err != nil {
				errs = append(errs, err)
			}
			if collect != nil {
				collect(ret)
			}
			if emission.Aborted() {
				current = current.Next()
				break
			}
		}
		current = current.Next()
	}
	core.unlock()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Invoke runs every connected, unblocked slot in insertion order and returns
// the last value seen, wrapped in an Optional that is invalid if no slot ran.
func (s *Signal4[A, B, C, D, R]) Invoke(a A, b B, c C, d D) (collector.Optional[R], error) {
	var col collector.Default[R]
	err := s.emit(a, b, c, d, col.Collect)
	return col.Result(), err
}

// InvokeFirst is like Invoke but keeps the first value seen.
func (s *Signal4[A, B, C, D, R]) InvokeFirst(a A, b B, c C, d D) (collector.Optional[R], error) {
	var col collector.First[R]
	err := s.emit(a, b, c, d, col.Collect)
	return col.Result(), err
}

// InvokeRange is like Invoke but returns every value seen, in emission order.
func (s *Signal4[A, B, C, D, R]) InvokeRange(a A, b B, c C, d D) ([]R, error) {
	var col collector.Range[R]
	err := s.emit(a, b, c, d, col.Collect)
	return col.Result(), err
}

// Emit invokes the signal with the default collector and discards the result.
func (s *Signal4[A, B, C, D, R]) Emit(a A, b B, c C, d D) error {
	_, err := s.Invoke(a, b, c, d)
	return err
}

// InvokeWith4 invokes s, aggregating slot return values with col and
// returning col's result.
func InvokeWith4[A, B, C, D, R, Out any](s *Signal4[A, B, C, D, R], a A, b B, c C, d D, col collector.Collector[R, Out]) (Out, error) {
	err := s.emit(a, b, c, d, col.Collect)
	return col.Result(), err
}

// Min4 invokes s and keeps the smallest value seen.
func Min4[A, B, C, D any, R cmp.Ordered](s *Signal4[A, B, C, D, R], a A, b B, c C, d D) (collector.Optional[R], error) {
	var col collector.Minimum[R]
	err := s.emit(a, b, c, d, col.Collect)
	return col.Result(), err
}

// Max4 invokes s and keeps the largest value seen.
func Max4[A, B, C, D any, R cmp.Ordered](s *Signal4[A, B, C, D, R], a A, b B, c C, d D) (collector.Optional[R], error) {
	var col collector.Maximum[R]
	err := s.emit(a, b, c, d, col.Collect)
	return col.Result(), err
}

// VoidSignal4 is a signal whose slots take four arguments and return nothing.
type VoidSignal4[A, B, C, D any] struct{ *core }

// NewVoidSignal4 constructs an empty signal with the given threading policy.
func NewVoidSignal4[A, B, C, D any](policy Policy) *VoidSignal4[A, B, C, D] {
	return &VoidSignal4[A, B, C, D]{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *VoidSignal4[A, B, C, D]) Connect(slot func(A, B, C, D), flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t.
func (s *VoidSignal4[A, B, C, D]) ConnectTracked(t *conn.Trackable, slot func(A, B, C, D), flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

// Emit runs every connected, unblocked slot in insertion order.
func (s *VoidSignal4[A, B, C, D]) Emit(a A, b B, c C, d D) error {
	core := s.core
	core.lock()
	endAbort := emission.BeginEmission()
	defer endAbort()

	current := core.lst.Head().Next()
	end := core.lst.Tail()
	var errs []error

	for current != end {
		rec := current.Value
		if current.Connected() && !rec.Blocked() {
			handle := conn.NewConnection(current, core.lst)
			endSlot := emission.BeginSlot(handle)
			core.unlock()
			err := runNodeVoid(rec, core.CollectErrors, func() {
				rec.Slot.(func(A, B, C, D))(a, b, c, d)
			})
			core.lock()
			endSlot()
			if err != nil {
				errs = append(errs, err)
			}
			if emission.Aborted() {
				current = current.Next()
				break
			}
		}
		current = current.Next()
	}
	core.unlock()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
