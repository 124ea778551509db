package request

import "github.com/mcoot/rummyledger/internal/model"

// CreatePlayerRequest is the request body for registering a player
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// UpdatePlayerRequest is the request body for renaming a player
type UpdatePlayerRequest struct {
	Name string `json:"name"`
}

// CreateGameRequest is the request body for recording a completed game.
// Pointer fields distinguish absent sections from zero values.
type CreateGameRequest struct {
	Settings    *model.GameSettings `json:"settings"`
	Hands       []model.HandResult  `json:"hands"`
	FinalResult *model.FinalResult  `json:"finalResult"`
}
