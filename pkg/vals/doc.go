// Package vals contains the value protocol of the host runtime: the small set
// of operations (conversion to an index, length, indexed read, iteration,
// equality, ordering, hashing and representation) that runtime-level
// algorithms such as slicing need from arbitrary values.
//
// Values are plain Go values. Builtin Go types are handled directly; other
// types take part by implementing the single-method interfaces declared here
// (Lener, Iterator, Equaler, Comparer, Hasher, Reprer, Kinder, IndexConverter).
package vals
