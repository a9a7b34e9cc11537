package format

import "errors"

var (
	ErrUnknownFormat          = errors.New("unknown format")
	ErrInvalidCompetitorCount = errors.New("invalid competitor count")
	ErrInvalidFormat          = errors.New("invalid format definition")
)
