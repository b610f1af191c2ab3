// Package encoder implements the recursive classify-and-serialize engine.
//
// The engine walks a host value graph depth-first. At each node the
// classifier assigns one of a closed set of semantic kinds by comparing
// the node's type descriptor against the canonical descriptors in the root
// package; leaf kinds are delegated to the temporal and identifier
// formatters, containers are recursed into, and unrecognized kinds are
// routed through the optional fallback hook.
//
// # Encoding Flow
//
//	out, err := encoder.Encode(root, fallback, hostjson.StrictInteger)
//
// Encode classifies root, streams tokens into a pooled Buffer, and
// returns a copy of the accumulated bytes. Errors abort the whole call;
// no partial output survives.
//
// # Kinds
//
//	string int list map bool none float tuple
//	datetime date time uuid record unrecognized
//
// uuid and record are opt-in via the SerializeUUID and SerializeRecord
// option bits; record detection probes for the reserved fields attribute.
//
// # Limits
//
// Structural depth and fallback invocations are tracked as independent
// uint8 counters, both bounded at 255. The depth counter is passed by
// value into each nested container, so it measures nesting along the
// current path rather than total nodes visited. Cycles are not detected
// by identity; a cyclic container trips the depth bound instead.
//
// # Strict Integers
//
// With hostjson.StrictInteger set, integers outside [-(2^53)+1, (2^53)-1]
// fail the call. This is interop policy for consumers that parse JSON
// numbers as doubles, not a serialization requirement.
//
// # Thread Safety
//
// Encode and EncodeTo share no mutable state across calls; concurrent
// calls are safe as long as the host keeps each input graph stable for
// the duration of its call.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[encode] unsupported_type: host type socket - type is not JSON serializable
//	[format] time_has_zone: time value must not carry timezone information
package encoder
