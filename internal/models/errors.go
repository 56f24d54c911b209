package models

import "errors"

var (
	ErrNoData        = errors.New("no trending data available")
	ErrQueryRequired = errors.New("search query is required")
	ErrNoSources     = errors.New("no sources configured")
)
