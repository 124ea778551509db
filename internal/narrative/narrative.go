// Package narrative turns a recorded game and its head-to-head context into
// a short human-readable recap via an external text-generation service.
package narrative

import (
	"context"

	"github.com/mcoot/rummyledger/internal/model"
	"github.com/mcoot/rummyledger/internal/services/stats"
)

// Request carries everything the recap needs for one game
type Request struct {
	Player1Name  string
	Player2Name  string
	FinalResult  model.FinalResult
	HandCount    int
	TargetScore  int
	HandWinBonus int
	Stats        stats.Bundle
}

// Generator produces a recap for a completed game. Implementations never
// fail: on any error they return descriptive fallback text instead, so
// recording a game cannot be aborted by the narrative side.
type Generator interface {
	Summary(ctx context.Context, req Request) string
}

// Static is a Generator that returns fixed text, for tests
type Static struct {
	Text string
}

// Summary implements Generator
func (s Static) Summary(context.Context, Request) string {
	return s.Text
}
