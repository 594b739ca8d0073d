package onboarding

import (
	"context"
	"fmt"
	"net/http"

	"rewardstracker/internal/client"
	"rewardstracker/internal/config"
	"rewardstracker/internal/store"
)

// Open resumes the session held in the configured store and creates accounts
// through the signup API at cfg.SignupAPIURL. The returned function closes the
// store.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*Pipeline, func() error, error) {
	s, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, nil, fmt.Errorf("opening onboarding store: %w", err)
	}

	accounts := client.NewSignupClient(cfg.SignupAPIURL, &http.Client{Timeout: cfg.SignupTimeout})

	p, err := Resume(ctx, s, accounts, append([]Option{WithTimeout(cfg.SignupTimeout)}, opts...)...)
	if err != nil {
		_ = s.Close()
		return nil, nil, err
	}
	return p, s.Close, nil
}
