// Package fixedarray provides Array, a contiguous owned buffer whose length N
// is chosen at construction and never changes afterwards.
//
// What:
//
//   - Construction: New (value-initialized), NewFilled (every slot = v),
//     FromValues (literal list, missing trailing entries zeroed, excess
//     entries rejected with ErrTooManyValues) and Of (N = len(values)).
//   - Access: Get/Set are unchecked (caller contract, the Go runtime panics
//     out of range); At/SetAt are bounds-checked and return ErrOutOfRange.
//     Front/Back return pointers into the buffer.
//   - Bulk: Fill, Swap (element-wise, same N only), Clone.
//   - Comparison: Equal, Compare and the four relational queries, compared
//     element by element in index order.
//   - Iteration: All, Backward, Values and the cursor endpoints
//     Begin/End/RBegin/REnd from package sequence.
//
// Array is not safe for concurrent mutation; callers synchronize.
//
// Complexity:
//
//   - Get/Set/At/SetAt/Front/Back: O(1).
//   - Fill, Swap, Clone, comparisons: O(N).
package fixedarray
