package domain

import "time"

type Verdict int

const (
	Allowed Verdict = iota
	Banned
	BannedUntil
	RestrictedUntil
	TermsRequired
)

func (v Verdict) String() string {
	switch v {
	case Allowed:
		return "allowed"
	case Banned:
		return "banned"
	case BannedUntil:
		return "banned_until"
	case RestrictedUntil:
		return "restricted_until"
	case TermsRequired:
		return "terms_required"
	default:
		return "unknown"
	}
}

// Access is the result of one authorization check.
type Access struct {
	Verdict Verdict
	Until   time.Time
}

// Evaluate decides whether w may act at now. All comparisons share the
// single now value passed in.
func Evaluate(w *Worker, now time.Time) Access {
	if w.Banned {
		if w.BannedUntil == nil {
			return Access{Verdict: Banned}
		}
		if w.BannedUntil.After(now) {
			return Access{Verdict: BannedUntil, Until: *w.BannedUntil}
		}
	}
	if w.RestrictedUntil != nil && w.RestrictedUntil.After(now) {
		return Access{Verdict: RestrictedUntil, Until: *w.RestrictedUntil}
	}
	if !w.TermsAccepted {
		return Access{Verdict: TermsRequired}
	}
	return Access{Verdict: Allowed}
}

// Err converts a denying verdict into its error, nil when allowed.
func (a Access) Err() error {
	switch a.Verdict {
	case Banned:
		return ErrBanned
	case BannedUntil:
		return &BannedUntilError{Until: a.Until}
	case RestrictedUntil:
		return &RestrictedUntilError{Until: a.Until}
	case TermsRequired:
		return ErrTermsRequired
	default:
		return nil
	}
}
