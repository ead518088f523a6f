package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/holdem-engine/internal/game"
)

// CallBot checks when it can and calls everything else
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger}
}

func (c *CallBot) MakeDecision(_ View, validActions []game.ValidAction) Decision {
	return first(validActions, "call-bot", game.Check, game.Call, game.AllIn)
}
