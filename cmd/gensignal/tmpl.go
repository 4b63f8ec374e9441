package main

// signalTemplate renders signal_gen.go from a []arity, one value-returning
// SignalN and one VoidSignalN block per entry, plus a MinN/MaxN/InvokeWithN
// set for every value-returning arity.
const signalTemplate = `// Code generated by cmd/gensignal from tmpl.go; arities 0 through 4.
// Regenerate with ` + "`go run ./cmd/gensignal`" + `. DO NOT EDIT.

package rocket

import (
	"cmp"
	"errors"

	"github.com/fayce66/rocket/collector"
	"github.com/fayce66/rocket/conn"
	"github.com/fayce66/rocket/emission"
)
{{range .}}
// ---------------------------------------------------------------------
// Arity {{.N}}
// ---------------------------------------------------------------------

// Signal{{.N}} is a signal whose slots take {{.N}} argument(s) and return R.
type Signal{{.N}}[{{if .TypeParamsAny}}{{.TypeParamsAny}}, {{end}}R any] struct{ *core }

// NewSignal{{.N}} constructs an empty signal with the given threading policy.
func NewSignal{{.N}}[{{if .TypeParamsAny}}{{.TypeParamsAny}}, {{end}}R any](policy Policy) *Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R] {
	return &Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R]{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R]) Connect(slot func({{.SlotSig}}) R, flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t,
// so it disconnects automatically when t.Close runs.
func (s *Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R]) ConnectTracked(t *conn.Trackable, slot func({{.SlotSig}}) R, flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

func (s *Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R]) emit({{if .ArgDecls}}{{.ArgDecls}}, {{end}}collect func(R)) error {
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
				return rec.Slot.(func({{.SlotSig}}) R)({{.ArgNames}})
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
func (s *Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R]) Invoke({{.ArgDecls}}) (collector.Optional[R], error) {
	var col collector.Default[R]
	err := s.emit({{if .ArgNames}}{{.ArgNames}}, {{end}}col.Collect)
	return col.Result(), err
}

// InvokeFirst is like Invoke but keeps the first value seen.
func (s *Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R]) InvokeFirst({{.ArgDecls}}) (collector.Optional[R], error) {
	var col collector.First[R]
	err := s.emit({{if .ArgNames}}{{.ArgNames}}, {{end}}col.Collect)
	return col.Result(), err
}

// InvokeRange is like Invoke but returns every value seen, in emission order.
func (s *Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R]) InvokeRange({{.ArgDecls}}) ([]R, error) {
	var col collector.Range[R]
	err := s.emit({{if .ArgNames}}{{.ArgNames}}, {{end}}col.Collect)
	return col.Result(), err
}

// Emit invokes the signal with the default collector and discards the
// result, surfacing only a slot-invocation error if one occurred.
func (s *Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R]) Emit({{.ArgDecls}}) error {
	_, err := s.Invoke({{.ArgNames}})
	return err
}

// InvokeWith{{.N}} invokes s, aggregating slot return values with col and
// returning col's result — the override hook for a caller-supplied
// collector.Collector instead of one of the built-in strategies above.
func InvokeWith{{.N}}[{{if .TypeParamsAny}}{{.TypeParamsAny}}, {{end}}R, Out any](s *Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R]{{if .ArgDecls}}, {{.ArgDecls}}{{end}}, col collector.Collector[R, Out]) (Out, error) {
	err := s.emit({{if .ArgNames}}{{.ArgNames}}, {{end}}col.Collect)
	return col.Result(), err
}

// Min{{.N}} invokes s and keeps the smallest value seen.
func Min{{.N}}[{{if .TypeParamsAny}}{{.TypeParamsAny}}, {{end}}R cmp.Ordered](s *Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R]{{if .ArgDecls}}, {{.ArgDecls}}{{end}}) (collector.Optional[R], error) {
	var col collector.Minimum[R]
	err := s.emit({{if .ArgNames}}{{.ArgNames}}, {{end}}col.Collect)
	return col.Result(), err
}

// Max{{.N}} invokes s and keeps the largest value seen.
func Max{{.N}}[{{if .TypeParamsAny}}{{.TypeParamsAny}}, {{end}}R cmp.Ordered](s *Signal{{.N}}[{{if .TypeParams}}{{.TypeParams}}, {{end}}R]{{if .ArgDecls}}, {{.ArgDecls}}{{end}}) (collector.Optional[R], error) {
	var col collector.Maximum[R]
	err := s.emit({{if .ArgNames}}{{.ArgNames}}, {{end}}col.Collect)
	return col.Result(), err
}

// VoidSignal{{.N}} is a signal whose slots take {{.N}} argument(s) and return nothing.
type VoidSignal{{.N}}{{.DeclBrackets}} struct{ *core }

// NewVoidSignal{{.N}} constructs an empty signal with the given threading policy.
func NewVoidSignal{{.N}}{{.DeclBrackets}}(policy Policy) *VoidSignal{{.N}}{{.UseBrackets}} {
	return &VoidSignal{{.N}}{{.UseBrackets}}{core: newCore(policy)}
}

// Connect links slot into the signal and returns a handle to the connection.
func (s *VoidSignal{{.N}}{{.UseBrackets}}) Connect(slot func({{.SlotSig}}), flags ConnectFlags) *conn.Connection {
	return s.core.connect(any(slot), flags)
}

// ConnectTracked connects slot and registers the resulting handle against t.
func (s *VoidSignal{{.N}}{{.UseBrackets}}) ConnectTracked(t *conn.Trackable, slot func({{.SlotSig}}), flags ConnectFlags) *conn.Connection {
	c := s.Connect(slot, flags)
	t.AddTrackedConnection(c)
	return c
}

// Emit runs every connected, unblocked slot in insertion order.
func (s *VoidSignal{{.N}}{{.UseBrackets}}) Emit({{.ArgDecls}}) error {
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
				rec.Slot.(func({{.SlotSig}}))({{.ArgNames}})
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
{{end}}`
