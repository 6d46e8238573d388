package replay

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/lvseq/dynarray"
)

// OpInitial labels the step that records the vector before any op ran.
const OpInitial = "initial"

// Step is the vector state after one op.
type Step struct {
	Index    int    // 0 for the initial state, then 1..len(Ops)
	Op       string // op name, or OpInitial
	Size     int
	Capacity int
	Values   []int                   // copy of the live elements
	Reallocs []dynarray.ReallocEvent // reallocations performed by this op
}

// Trace is the ordered record of a Run.
type Trace struct {
	Name  string
	Steps []Step
}

// Final returns the last recorded step.
func (t *Trace) Final() Step { return t.Steps[len(t.Steps)-1] }

// Run builds a vector from script.Initial (capacity 2*len, or 0 when
// empty) and applies every op in order, recording a Step after each.
//
// Errors:
//   - ErrEmptyScript, ErrUnknownOp from Script.Validate.
//   - ErrInvariant when Len/Cap/iteration disagree after an op.
//   - the vector's own errors (dynarray.ErrOutOfRange, ...) wrapped with
//     the op number.
//   - ctx.Err() when ctx is done before an op starts.
//
// On error the trace recorded so far is returned alongside it.
func Run(ctx context.Context, script *Script, opts ...Option) (*Trace, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	log := o.logger.With(slog.String("script", script.Name))

	var pending []dynarray.ReallocEvent
	hook := dynarray.WithOnRealloc(func(e dynarray.ReallocEvent) {
		pending = append(pending, e)
		log.Debug("realloc",
			slog.String("reason", e.Reason.String()),
			slog.Int("old_cap", e.OldCapacity),
			slog.Int("new_cap", e.NewCapacity),
			slog.Int("copied", e.Copied))
	})

	var v *dynarray.Vector[int]
	if len(script.Initial) > 0 {
		v = dynarray.FromSlice(script.Initial, hook)
	} else {
		v = dynarray.New[int](hook)
	}

	trace := &Trace{Name: script.Name, Steps: make([]Step, 0, len(script.Ops)+1)}
	trace.Steps = append(trace.Steps, snapshot(0, OpInitial, v, nil))

	for i, op := range script.Ops {
		if err := ctx.Err(); err != nil {
			return trace, err
		}
		n := i + 1
		if err := apply(v, op); err != nil {
			return trace, fmt.Errorf("replay: op %d %s: %w", n, op.Op, err)
		}
		if err := checkInvariant(v); err != nil {
			return trace, fmt.Errorf("replay: op %d %s: %w", n, op.Op, err)
		}
		step := snapshot(n, op.Op, v, pending)
		pending = nil
		trace.Steps = append(trace.Steps, step)
		log.Debug("step", slog.Int("n", n), slog.String("op", op.Op),
			slog.Int("size", step.Size), slog.Int("cap", step.Capacity))
	}
	final := trace.Final()
	log.Info("replay done", slog.Int("ops", len(script.Ops)),
		slog.Int("size", final.Size), slog.Int("cap", final.Capacity),
		slog.Int("reallocs", v.Metrics().Reallocations))

	return trace, nil
}

func snapshot(n int, op string, v *dynarray.Vector[int], events []dynarray.ReallocEvent) Step {
	return Step{
		Index:    n,
		Op:       op,
		Size:     v.Len(),
		Capacity: v.Cap(),
		Values:   slices.Clone(v.Data()),
		Reallocs: events,
	}
}

// apply runs a single op against v.
func apply(v *dynarray.Vector[int], op Op) error {
	var err error
	switch op.Op {
	case OpPush:
		v.PushBack(op.Value)
	case OpEmplace:
		v.EmplaceBack(op.Value)
	case OpInsert:
		_, err = v.Insert(op.Pos, op.Value)
	case OpInsertRange:
		_, err = v.InsertSlice(op.Pos, op.Values...)
	case OpErase:
		_, err = v.Erase(op.Pos)
	case OpEraseRange:
		_, err = v.EraseRange(op.First, op.Last)
	case OpPop:
		_, err = v.PopBack()
	case OpReserve:
		v.Reserve(op.N)
	case OpShrink:
		v.ShrinkToFit()
	case OpResize:
		err = v.ResizeWith(op.N, op.Value)
	case OpClear:
		v.Clear()
	default:
		err = ErrUnknownOp
	}

	return err
}

// checkInvariant verifies 0 <= Len <= Cap and that Values yields Len items.
func checkInvariant(v *dynarray.Vector[int]) error {
	if v.Len() < 0 || v.Len() > v.Cap() {
		return fmt.Errorf("size %d, capacity %d: %w", v.Len(), v.Cap(), ErrInvariant)
	}
	seen := 0
	for range v.Values() {
		seen++
	}
	if seen != v.Len() {
		return fmt.Errorf("iterated %d of %d elements: %w", seen, v.Len(), ErrInvariant)
	}

	return nil
}
