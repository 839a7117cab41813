package types

import (
	"fmt"
	"time"
)

/*
MaxAge is an entry's expiration budget.

It is deliberately not a bare time.Duration, because two different states
must stay distinguishable:

 1. Unlimited: the entry never expires. This is the zero value, so an
    entry that was never given a budget cannot be mistaken for one that
    expires instantly.
 2. A duration, including zero: MaxAgeFor(0) is a valid budget whose entry
    is already past due the moment it is written.
*/
type MaxAge struct {
	d       time.Duration
	limited bool
}

// Forever returns the unlimited budget. It equals the zero MaxAge.
func Forever() MaxAge { return MaxAge{} }

// MaxAgeFor returns a budget of d, measured from the entry's last update
// (or last access, under the sliding policy). A negative d is a caller
// bug and panics.
func MaxAgeFor(d time.Duration) MaxAge {
	if d < 0 {
		panic(fmt.Sprintf("negative max age %v", d))
	}
	return MaxAge{d: d, limited: true}
}

// Limited returns the budget duration and whether there is one at all.
func (m MaxAge) Limited() (time.Duration, bool) { return m.d, m.limited }

// Unlimited reports whether the entry never expires.
func (m MaxAge) Unlimited() bool { return !m.limited }

// String renders the budget for diagnostics: the duration, or "unlimited".
func (m MaxAge) String() string {
	if !m.limited {
		return "unlimited"
	}
	return m.d.String()
}
