package service

import "errors"

var (
	ErrAccessDenied  = errors.New("access denied")
	ErrLoginRequired = errors.New("login required")
	ErrInactive      = errors.New("member is not active")
	ErrModuleOff     = errors.New("module disabled")
)
