// Package workerpool runs a fixed-size pool of goroutines over a shared
// item iterator guarded by one mutex, each worker owning private
// scratch state and a partial result it only merges into the final
// result once, after every worker has drained the iterator.
//
// Per-item processing is lock-free: the mutex is held only to pop the
// next item; the final join-merge runs sequentially on the calling
// goroutine after every worker has exited. Workers never share a
// *rand.Rand or scratch buffer; Run's scratch factory is called once
// per worker.
package workerpool
