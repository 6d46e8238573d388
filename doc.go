// Package lvseq is a small library of contiguous sequence containers for Go.
//
// Under the hood everything is organized in subpackages:
//
//	sequence/    Cursor, lexicographic Compare/Equal helpers shared by the containers
//	fixedarray/  Array[T]: length fixed at construction, checked and unchecked access
//	dynarray/    Vector[T]: growable array with an exact, observable growth policy
//	replay/      YAML-scripted operation replays that trace size and capacity
//
// Command capacitytrace (cmd/capacitytrace) wraps replay as a CLI, and
// examples/ holds runnable demos.
//
// Growth policy of dynarray.Vector at a glance:
//
//	insert/push into a full vector   cap c -> 2c (1 when c == 0)
//	range insert, size+k >= cap      cap -> 2(size+k)
//	resize n beyond cap              cap -> 2n
//	reserve n                        cap -> n
//	shrink to fit                    cap -> size
//	construct from n values          cap -> 2n
//
// Containers are not safe for concurrent use; callers synchronize.
package lvseq
