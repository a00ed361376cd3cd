package domain

import (
	"errors"
)

// DateLayout is the wire format for every date carried by the API.
const DateLayout = "2006-01-02"

var (
	MessageFailedBodyRequest    = "failed to parse body request"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID = errors.New("failed to parse UUID")
)
