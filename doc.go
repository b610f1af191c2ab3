// Package hostjson encodes dynamically-typed, host-managed value graphs
// into compact JSON.
//
// The library is written for embedders of dynamic runtimes: the host owns
// the values and their type system, and exposes them to the encoder only
// through the opaque Value handle contract defined in this package. The
// encoder walks the graph depth-first, classifies each handle into a closed
// set of semantic kinds, and streams minified JSON tokens into a single
// output buffer.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	hostjson/         Root package with the Value handle contract,
//	                  type descriptors, and the Option bitmask
//	├── encoder/      Classifier and recursive JSON encoder
//	├── errors/       Structured error types for debugging
//	├── hostval/      Reference in-memory host implementation
//	└── cmd/encode/   CLI for encoding YAML/JSON documents
//
// # Quick Start
//
// Build values with the reference host and encode them:
//
//	doc := hostval.NewDict().
//	    SetString("id", hostval.Str("a1")).
//	    SetString("count", hostval.Int(3))
//
//	out, err := encoder.Encode(doc, nil, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(out)) // {"id":"a1","count":3}
//
// # Value Handle Contract
//
// A handle carries a *Type descriptor; descriptors are compared by pointer
// identity, so classification is a fixed chain of O(1) checks rather than
// open-ended subtype dispatch. After classification the encoder asserts the
// accessor interface matching the kind (StringValue, SequenceValue,
// MappingValue, ...). Handles are borrowed: the encoder never mutates them
// and never retains them past the call.
//
// # Limits
//
// Two independent uint8 counters bound every call: structural recursion
// depth and fallback-hook invocations, both capped at 255. Exceeding either
// is a terminal error. Cyclic graphs are not detected by identity; the
// depth bound is the sole cycle defense.
//
// # Concurrency
//
// Each call owns its traversal state and output buffer, so concurrent
// calls on independent goroutines need no locking, provided the host does
// not mutate the value graph during a call.
package hostjson
