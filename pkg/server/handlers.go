package server

import (
	"Nexus/handler"
)

type Handlers struct {
	Points     *handler.Points
	Profile    *handler.Profile
	Follow     *handler.Follow
	Submission *handler.Submission
	History    *handler.History
	Module     *handler.Module
	Admin      *handler.Admin
	Health     *handler.Health
}
