// Package maybe provides a generic optional value used to express
// failure-propagating computations without nil sentinels, panics or error
// values.
//
// A Maybe[A] is always exactly one of two variants: Present, carrying a value
// of type A, or Absent, carrying nothing. The zero value of Maybe[A] is Absent.
// Fields are unexported, so the constructors Present and Absent are the only
// way to build one.
//
// # Architecture
//
// Everything in the package is derived from a single dispatcher:
//
//   - Match  – exhaustive case analysis; both handlers are required arguments
//   - Bind   – sequences a Maybe-producing step, short-circuiting on Absent
//   - Map    – applies a plain function to a Present value
//   - Filter – keeps a Present value only when a predicate holds
//
// Bind satisfies the monad laws (left identity, right identity and
// associativity), which makes long validation chains safe to refactor.
//
// # Usage
//
//	age := maybe.Bind(parseInt(raw), func(n int) maybe.Maybe[int] {
//	    if n < 0 || n > 120 {
//	        return maybe.Absent[int]()
//	    }
//	    return maybe.Present(n)
//	})
//
//	msg := maybe.Match(age,
//	    func(n int) string { return fmt.Sprintf("age %d accepted", n) },
//	    func() string { return "invalid age" },
//	)
//
// # Error Handling
//
// Absent is the only failure representation and deliberately carries no
// cause. Adapters FromOK and FromError convert Go's comma-ok and error idioms
// into a Maybe, discarding the reason. Passing a nil handler to Match is a
// programming error and panics with ErrNilHandler.
//
// # Concurrency
//
// Values are immutable after construction and the package holds no state, so
// every function is safe for concurrent use.
package maybe
