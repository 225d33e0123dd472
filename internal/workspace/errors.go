package workspace

import "errors"

var (
	ErrInvalidValue     = errors.New("invalid value")
	ErrUnknownVoice     = errors.New("unknown voice")
	ErrEmptyText        = errors.New("text is empty")
	ErrConvertBusy      = errors.New("conversion already in progress")
	ErrPlaybackDisabled = errors.New("nothing converted to play")
)
