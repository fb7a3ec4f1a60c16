package attachment

import "errors"

var ErrAttachmentNotFound = errors.New("attachment not found")

var ErrInvalidUpload = errors.New("invalid upload")

var ErrNotAllowed = errors.New("not allowed to access these attachments")

var ErrStoreFailure = errors.New("attachment store failure")
