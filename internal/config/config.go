package config

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Effect parameters used at the top level; package defaults live in
	// internal/constellation.
	StarCount    = 50
	LinkDistance = 50
)
