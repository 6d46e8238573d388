package dynarray

// DefaultCapacity is the initial capacity of New when WithCapacity is absent.
const DefaultCapacity = 0

const panicCapacityNegative = "dynarray: WithCapacity: capacity must be non-negative"

// Reason names the operation that triggered a reallocation.
type Reason int

const (
	ReasonReserve     Reason = iota // explicit Reserve
	ReasonShrink                    // ShrinkToFit
	ReasonInsert                    // Insert / PushBack on a full vector
	ReasonInsertRange               // InsertSlice / InsertRange past capacity
	ReasonResize                    // Resize beyond capacity
	ReasonEmplace                   // EmplaceBack on a full vector
)

var reasonNames = [...]string{
	ReasonReserve:     "reserve",
	ReasonShrink:      "shrink",
	ReasonInsert:      "insert",
	ReasonInsertRange: "insert_range",
	ReasonResize:      "resize",
	ReasonEmplace:     "emplace",
}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}

	return reasonNames[r]
}

// ReallocEvent describes one completed reallocation.
type ReallocEvent struct {
	Reason      Reason
	OldCapacity int
	NewCapacity int
	Size        int // elements held by the new buffer, counting an insertion gap
	Copied      int // elements moved into the new buffer
}

// Option configures a Vector at construction.
type Option func(*options)

type options struct {
	capacity  int                // minimum initial capacity
	onRealloc func(ReallocEvent) // nil: no hook
}

// WithCapacity sets a minimum initial capacity. Constructors allocate
// max(n, their own policy), so New gets exactly n and NewFilled(k, v)
// gets max(n, 2k). Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityNegative)
	}

	return func(o *options) { o.capacity = n }
}

// WithOnRealloc installs fn as a post-reallocation hook. It runs once per
// reallocation, after the new buffer is in place. The initial allocation
// made by a constructor is not reported. The hook must not mutate the
// vector.
func WithOnRealloc(fn func(ReallocEvent)) Option {
	return func(o *options) { o.onRealloc = fn }
}

func gatherOptions(opts []Option) options {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
