package domain

import (
	"errors"
	"fmt"
	"time"
)

// Kind groups errors by how the caller has to react to them.
type Kind int

const (
	KindStore Kind = iota
	KindValidation
	KindNotFound
	KindPrecondition
	KindAuthorization
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPrecondition:
		return "precondition"
	case KindAuthorization:
		return "authorization"
	default:
		return "store"
	}
}

type Error struct {
	Kind Kind
	Code string
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Msg: msg}
}

var (
	ErrInvalidReference   = newError(KindValidation, "INVALID_REFERENCE", "invalid order reference")
	ErrInvalidAmount      = newError(KindValidation, "INVALID_AMOUNT", "order amount must be positive")
	ErrInvalidRating      = newError(KindValidation, "INVALID_RATING", "rating must be between 1 and 5")
	ErrInvalidJobID       = newError(KindValidation, "INVALID_JOB_ID", "in-job identifier is required")
	ErrInvalidGroupName   = newError(KindValidation, "INVALID_GROUP_NAME", "group name is required")
	ErrInvalidRestriction = newError(KindValidation, "INVALID_RESTRICTION", "restriction must end in the future")

	ErrOrderNotFound  = newError(KindNotFound, "ORDER_NOT_FOUND", "order not found")
	ErrWorkerNotFound = newError(KindNotFound, "WORKER_NOT_FOUND", "worker not found")
	ErrGroupNotFound  = newError(KindNotFound, "GROUP_NOT_FOUND", "group not found")

	ErrOrderExists           = newError(KindPrecondition, "ORDER_EXISTS", "order reference already used")
	ErrGroupExists           = newError(KindPrecondition, "GROUP_EXISTS", "group already exists")
	ErrAlreadyApplied        = newError(KindPrecondition, "ALREADY_APPLIED", "already applied to this order")
	ErrOrderNotPending       = newError(KindPrecondition, "ORDER_NOT_PENDING", "order is no longer open")
	ErrPoolFull              = newError(KindPrecondition, "POOL_FULL", "order already has the maximum number of applications")
	ErrWorkerHasNoGroup      = newError(KindPrecondition, "WORKER_HAS_NO_GROUP", "worker is not assigned to a group")
	ErrNotEnoughFromAnyGroup = newError(KindPrecondition, "NOT_ENOUGH_FROM_ANY_GROUP", "not enough applications from one group")
	ErrAlreadyPaid           = newError(KindPrecondition, "ALREADY_PAID", "payout already issued")
	ErrOrderNotCompleted     = newError(KindPrecondition, "ORDER_NOT_COMPLETED", "order is not completed")
	ErrAlreadyRated          = newError(KindPrecondition, "ALREADY_RATED", "order is already rated")

	ErrNotAuthorized   = newError(KindAuthorization, "NOT_AUTHORIZED", "not allowed to act on this order")
	ErrNotRosterMember = newError(KindAuthorization, "NOT_ROSTER_MEMBER", "not a member of the order roster")
	ErrNotPoolMember   = newError(KindAuthorization, "NOT_POOL_MEMBER", "no application in this order pool")
	ErrBanned          = newError(KindAuthorization, "BANNED", "worker is banned")
	ErrTermsRequired   = newError(KindAuthorization, "TERMS_REQUIRED", "terms must be accepted first")
)

// WrongStateError reports a transition attempted from an illegal status.
type WrongStateError struct {
	Expected OrderStatus
	Actual   OrderStatus
}

func (e *WrongStateError) Error() string {
	return fmt.Sprintf("order is %s, expected %s", e.Actual, e.Expected)
}

type BannedUntilError struct {
	Until time.Time
}

func (e *BannedUntilError) Error() string {
	return "worker is banned until " + e.Until.Format(time.RFC3339)
}

type RestrictedUntilError struct {
	Until time.Time
}

func (e *RestrictedUntilError) Error() string {
	return "worker is restricted until " + e.Until.Format(time.RFC3339)
}

// KindOf classifies err. Anything unrecognised is a store failure.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	var ws *WrongStateError
	if errors.As(err, &ws) {
		return KindPrecondition
	}
	var bu *BannedUntilError
	if errors.As(err, &bu) {
		return KindAuthorization
	}
	var ru *RestrictedUntilError
	if errors.As(err, &ru) {
		return KindAuthorization
	}
	return KindStore
}
