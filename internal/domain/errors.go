package domain

import "errors"

var (
	// ErrMissingID signals a document without an identity key.
	ErrMissingID = errors.New("document id is required")
	// ErrInvalidDocType signals a document type outside the closed enumeration.
	ErrInvalidDocType = errors.New("invalid document type")
	// ErrUnknownRecordKind signals a business-record kind the adapter cannot convert.
	ErrUnknownRecordKind = errors.New("unknown record kind")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
)
