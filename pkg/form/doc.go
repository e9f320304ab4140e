// Package form validates a whole raw record by chaining independent field
// validators with maybe.Bind.
//
// Validate runs the name, email and age validators in that order. Each step
// closes over the fields validated before it, and the last step wraps a
// complete Record in maybe.Present. The first Absent ends the chain: later
// validators are not invoked and the caller cannot tell which field failed.
//
// A Record can only be obtained from a successful validation, so every field
// it holds already satisfies its rule.
//
// # Usage
//
//	v := form.New(form.WithLimits(limits))
//	msg := maybe.Match(v.Validate(form.Raw{
//	    form.FieldName:  r.FormValue("name"),
//	    form.FieldEmail: r.FormValue("email"),
//	    form.FieldAge:   r.FormValue("age"),
//	}),
//	    func(rec form.Record) string { return "welcome, " + rec.Name.String() },
//	    func() string { return "invalid form" },
//	)
//
// Validator is immutable after New and safe for concurrent use.
package form
