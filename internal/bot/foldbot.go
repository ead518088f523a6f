package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/holdem-engine/internal/game"
)

// FoldBot checks when it can and folds otherwise
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger}
}

func (f *FoldBot) MakeDecision(_ View, validActions []game.ValidAction) Decision {
	return first(validActions, "fold-bot", game.Check, game.Fold)
}
