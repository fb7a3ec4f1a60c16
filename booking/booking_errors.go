package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrGroupNotFound = errors.New("group not found")

var ErrValidation = errors.New("invalid booking data")

var ErrInvalidState = errors.New("booking state does not allow this transition")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrScheduleConflict = errors.New("interval overlaps an existing active booking")

var ErrProposalPending = errors.New("a reschedule proposal is already awaiting a response")

var ErrNoProposal = errors.New("no reschedule proposal is awaiting a response")

var ErrRecordExists = errors.New("a record already exists for this booking")
