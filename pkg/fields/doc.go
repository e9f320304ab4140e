// Package fields provides total validators that turn raw form strings into
// strongly typed values wrapped in maybe.Maybe.
//
// Name, Email and Age have unexported fields and can only be obtained from
// their validators, so any value in hand already satisfies its rule. A
// validator never panics and never reports a reason: malformed input is
// simply Absent.
//
// Policy thresholds live in Limits. The package-level functions use
// DefaultLimits; LoadLimits reads overrides from the environment:
//
//	FORMKIT_NAME_MAX_LEN   maximum name length in characters (20)
//	FORMKIT_AGE_MIN        lowest accepted age (0)
//	FORMKIT_AGE_MAX        highest accepted age (120)
//	FORMKIT_STRICT_EMAIL   require a structurally valid email (false)
//
// # Usage
//
//	age := fields.ParseAge("27")          // Present(27)
//	name := fields.ParseName("")          // Absent
//
//	limits, err := fields.LoadLimits()
//	if err != nil {
//	    return err
//	}
//	name = limits.Name("a much longer display name")
package fields
