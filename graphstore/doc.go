// Package graphstore implements the mutable directed graph the rest of the
// DFVS solver operates on: a fixed vertex-id range [0,n), sorted adjacency
// vectors in place of pointer graphs or hash sets, and the handful of whole
// graph operations (SCC decomposition, cycle detection/enumeration,
// undirected-edge projection) the reduction, split, bounding and search
// layers need.
//
// A Graph never grows past its construction size n: RemoveVertex marks a
// vertex deleted and empties its adjacency, it does not shrink the id
// space. Compress is the only operation that produces a graph over a
// smaller, dense id space, alongside the new→old vertex mapping.
//
// None of the traversal operations are safe for concurrent use on the same
// Graph; callers own their working copy per recursion frame, consistent
// with the single-threaded, synchronous solver core.
package graphstore
