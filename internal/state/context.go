package state

import (
	"context"
	"fmt"

	"github.com/magmast/sq/internal/config"
	"github.com/magmast/sq/pkg/apply"
)

type key int

const stateKey key = 0

// State is built once per invocation in the root command and shared with
// subcommands through the command context.
type State struct {
	Config config.Config
}

func New(cfg config.Config) *State {
	return &State{Config: cfg}
}

// Strategy resolves the bulk strategy. A non-empty override replaces the
// configured value, which is then never parsed.
func (s *State) Strategy(override string) (apply.Strategy, error) {
	name := s.Config.Strategy
	if override != "" {
		name = override
	}

	st, err := apply.ParseStrategy(name)
	if err != nil {
		return "", fmt.Errorf("invalid strategy: %w", err)
	}

	return st, nil
}

func Set(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, stateKey, state)
}

func Get(ctx context.Context) *State {
	return ctx.Value(stateKey).(*State)
}
