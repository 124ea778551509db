package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNameRequired   = errors.New("name is required")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrInvalidGameData = errors.New("invalid game data")
)
