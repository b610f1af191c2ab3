// Package hostval is a reference in-memory implementation of the hostjson
// value handle contract.
//
// It exists for tests, examples, and the CLI: a lightweight host whose
// values are plain Go data. Embedders of real runtimes implement the
// contract over their own object representation instead; nothing in the
// encoder depends on this package.
//
// Values cover the full closed kind set (Str, Int, BigInt, Float, Bool,
// None, List, Tuple, Dict, Date, Time, DateTime, UUID, Record) plus
// Foreign for host-minted types outside it. Dict preserves insertion
// order and permits arbitrary key handles so the encoder's non-string-key
// rejection is reachable.
package hostval
