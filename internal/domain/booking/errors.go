package booking

import "shareit/internal/pkg/errs"

var (
	ErrItemNotFound    = errs.NotFound("item not found")
	ErrUserNotFound    = errs.NotFound("user not found")
	ErrBookingNotFound = errs.NotFound("booking not found")

	ErrItemUnavailable = errs.BadRequest("item not available")
	ErrInvalidInterval = errs.BadRequest("invalid interval")
	ErrStartInPast     = errs.BadRequest("start must not be in the past")

	ErrSelfBooking  = errs.Forbidden("cannot book own item")
	ErrOverlap      = errs.Forbidden("overlapping booking")
	ErrNotItemOwner = errs.Forbidden("not item owner")
	ErrNotBooker    = errs.Forbidden("not booker")
)

// ErrAlreadyResolved is matched with errs.Is; the concrete error names the current status.
var ErrAlreadyResolved = errs.New("booking already resolved")

// ErrUnknownState is matched with errs.Is; the concrete error echoes the rejected text.
var ErrUnknownState = errs.New("unknown state")

func alreadyResolved(s Status) error {
	err := errs.Mark(errs.Newf("booking already resolved: %s", s), ErrAlreadyResolved)
	return errs.Mark(err, errs.ErrForbidden)
}

func unknownState(text string) error {
	err := errs.Mark(errs.Newf("unknown state: %s", text), ErrUnknownState)
	return errs.Mark(err, errs.ErrBadRequest)
}
