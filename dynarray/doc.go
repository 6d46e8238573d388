// Package dynarray provides Vector, a contiguous owned buffer with a
// logical size separate from its allocated capacity.
//
// What:
//
//   - Construction: New (empty, zero capacity), NewFilled (n copies of a
//     value), Of / FromSlice (literal list), FromCursors / FromSeq (range).
//     Every non-empty constructor allocates capacity 2n.
//   - Capacity control: Reserve (exact, grow only), ShrinkToFit (exact).
//   - Mutation: Clear, Resize/ResizeWith, Insert, InsertSlice, InsertRange,
//     Erase, EraseRange, PushBack, PopBack, EmplaceBack, Swap.
//   - Copy and move: Clone/Assign duplicate size and capacity into a fresh
//     buffer; Move/MoveAssign transfer the buffer and reset the source to
//     the empty, zero-capacity state.
//   - Access: Get/Set unchecked, At/SetAt checked (ErrOutOfRange),
//     Front/Back return copies of the end elements.
//   - Comparison: Equal, Compare and the relational queries (lexicographic,
//     a shorter equal prefix orders first).
//   - Iteration: All, Backward, Values, and sequence cursors.
//
// Growth policy (observable through Cap and kept exact):
//
//	Insert / PushBack on a full vector     capacity c -> 2c (1 when c == 0)
//	EmplaceBack on a full vector           capacity c -> 2c (1 when c == 0)
//	InsertSlice when size+count >= c       capacity -> 2*(size+count)
//	Resize(n) with n > c                   capacity -> 2n
//	Reserve(n) with n > c                  capacity -> n
//	ShrinkToFit with c != size             capacity -> size
//
// Invariants:
//
//	0 <= Len() <= Cap() after every call. Slots in [Len(), Cap()) always
//	hold the zero value of T, so erased elements are not kept reachable.
//	A reallocation fills the new buffer completely before the old one is
//	dropped.
//
// Invalidation:
//
//	Data views, Ref pointers and cursors alias the buffer. Any call that
//	reallocates or shifts elements (everything under Mutation plus Reserve
//	and ShrinkToFit) invalidates them.
//
// Vector is not safe for concurrent use; callers synchronize.
package dynarray
