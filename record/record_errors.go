package record

import "errors"

var ErrRecordNotFound = errors.New("record not found")

var ErrDuplicateRecord = errors.New("a record already exists for this booking")
