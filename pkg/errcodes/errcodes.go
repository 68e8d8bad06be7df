package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Inventory proxy.
	InvalidJSONBody     failure.ErrorCode = "InvalidJSONBody"
	UpstreamUnavailable failure.ErrorCode = "UpstreamUnavailable"

	// Catalog browser.
	MalformedListing failure.ErrorCode = "MalformedListing"
)
