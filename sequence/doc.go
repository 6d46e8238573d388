// Package sequence holds the pieces shared by the lvseq containers:
// lexicographic comparison over contiguous element runs and the
// bidirectional Cursor used for forward and reverse traversal.
//
// What:
//
//   - Compare / CompareFunc: three-way lexicographic comparison. The first
//     differing element decides; when one run is a strict prefix of the
//     other, the shorter run orders first.
//   - Equal / EqualFunc: equal length and pairwise-equal elements.
//   - Ordering: the three-way result with the relational queries
//     IsLess, IsLessOrEqual, IsGreater, IsGreaterOrEqual derived from it.
//   - Cursor: a position inside a contiguous view that steps +1 (forward)
//     or -1 (reverse). Begin/End and RBegin/REnd build the endpoint pairs.
//
// Invalidation:
//
//	A Cursor aliases the buffer it was created from. Any container
//	operation that reallocates or shifts that buffer invalidates every
//	Cursor taken before it; using one afterwards reads stale or foreign
//	slots. Nothing here tracks that, callers must re-acquire cursors.
//
// Complexity:
//
//   - Compare, Equal: O(min(n, m)) time, O(1) memory.
//   - Cursor moves and reads: O(1).
//   - Collect: O(k) for k elements in the range.
package sequence
