package services

import (
	"context"

	"travo/pkg/utils"
)

// stubTextGen records the last call and replays canned output.
type stubTextGen struct {
	response string
	err      error

	calls          int
	lastSystemMsg  string
	lastUserPrompt string
	lastOpts       utils.GenerationOptions
}

func (s *stubTextGen) GenerateText(ctx context.Context, systemPrompt string, userPrompt string, opts utils.GenerationOptions) (string, error) {
	s.calls++
	s.lastSystemMsg = systemPrompt
	s.lastUserPrompt = userPrompt
	s.lastOpts = opts
	return s.response, s.err
}
