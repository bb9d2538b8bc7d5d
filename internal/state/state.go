package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Paintersrp/notes/internal/api"
	"github.com/Paintersrp/notes/internal/config"
	"github.com/Paintersrp/notes/internal/logging"
)

// State is shared by every command: the resolved config, a client for the
// notes API and the application logger.
type State struct {
	Config *config.Config
	Client *api.Client
	Logger *zap.Logger
}

// NewState loads the configuration at configPath (the default location when
// empty) and builds the logger and API client from it.
func NewState(configPath string) (*State, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}

	return FromConfig(cfg, log)
}

func FromConfig(cfg *config.Config, log *zap.Logger) (*State, error) {
	if log == nil {
		log = logging.Nop()
	}

	client, err := api.New(
		cfg.ServerURL,
		api.WithLogger(log),
		api.WithToken(cfg.Token),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return &State{Config: cfg, Client: client, Logger: log}, nil
}

// Close flushes the logger.
func (s *State) Close() error {
	if s == nil || s.Logger == nil {
		return nil
	}
	_ = s.Logger.Sync()
	return nil
}
