// Package onboarding implements the three-step onboarding flow:
// credentials, profile, consent. Each step is validated, persisted through an
// injected Store and, for signup, an AccountGateway, and only then advances.
package onboarding

import (
	"context"
	"errors"
	"maps"
	"time"

	"go.uber.org/zap"

	"rewardstracker/internal/client"
	apperrors "rewardstracker/internal/errors"
	"rewardstracker/internal/logger"
	"rewardstracker/internal/models"
	"rewardstracker/internal/validator"
)

// DefaultTimeout bounds the remote account calls.
const DefaultTimeout = 10 * time.Second

// Store keys.
const (
	KeyUserID  = "userId"
	KeyProfile = "profileData"
	KeyConsent = "hasConsented"
)

// Step is a pipeline state.
type Step int

const (
	StepCredentials Step = iota
	StepProfile
	StepConsent
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepCredentials:
		return "credentials"
	case StepProfile:
		return "profile"
	case StepConsent:
		return "consent"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Store is the durable key-value store the pipeline persists steps to.
type Store interface {
	Set(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string, dest any) (bool, error)
}

// AccountGateway creates and reads back accounts on the signup API.
type AccountGateway interface {
	CreateAccount(ctx context.Context, req client.SignupRequest) (*models.Account, error)
	GetAccount(ctx context.Context, id string) (*models.Account, error)
}

// Pipeline drives one onboarding session. It is not safe for concurrent use.
type Pipeline struct {
	store    Store
	accounts AccountGateway
	rules    *validator.Rules
	timeout  time.Duration
	log      *zap.SugaredLogger

	step      Step
	accountID string
	profile   *models.Profile
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTimeout sets the deadline applied to each remote account call.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithRules replaces the field rules, typically to pin the clock.
func WithRules(r *validator.Rules) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.rules = r
		}
	}
}

// WithLogger sets the logger used for step transitions.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// New returns a pipeline at the credentials step.
func New(store Store, accounts AccountGateway, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:    store,
		accounts: accounts,
		rules:    validator.NewRules(),
		timeout:  DefaultTimeout,
		step:     StepCredentials,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.Named("onboarding")
	}
	return p
}

// Resume rebuilds a pipeline from what the store already holds: a stored
// consent and profile mean the flow is complete, a stored profile means
// consent is next, a stored account id means the profile is next.
func Resume(ctx context.Context, store Store, accounts AccountGateway, opts ...Option) (*Pipeline, error) {
	p := New(store, accounts, opts...)

	var accountID string
	if _, err := store.Get(ctx, KeyUserID, &accountID); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	var profile models.Profile
	hasProfile, err := store.Get(ctx, KeyProfile, &profile)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	var consented bool
	if _, err := store.Get(ctx, KeyConsent, &consented); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	p.accountID = accountID
	switch {
	case hasProfile && consented:
		p.profile = &profile
		p.step = StepComplete
	case hasProfile:
		p.profile = &profile
		p.step = StepConsent
	case accountID != "":
		p.step = StepProfile
	}

	p.log.Infow("onboarding resumed", "step", p.step, "has_account", accountID != "")
	return p, nil
}

// Step returns the current state.
func (p *Pipeline) Step() Step { return p.step }

// AccountID returns the identifier of the account created at signup, or ""
// after a login.
func (p *Pipeline) AccountID() string { return p.accountID }

// Profile returns the submitted profile, if any.
func (p *Pipeline) Profile() (models.Profile, bool) {
	if p.profile == nil {
		return models.Profile{}, false
	}
	return *p.profile, true
}

// SubmitCredentials validates the credentials of creds.Mode and reports every
// invalid field at once. Signup creates the account remotely and stores its
// identifier; login performs no credential check and persists nothing.
func (p *Pipeline) SubmitCredentials(ctx context.Context, creds models.Credentials) error {
	if err := p.expect(StepCredentials); err != nil {
		return err
	}

	if fields := p.rules.ValidateCredentials(creds); len(fields) > 0 {
		return apperrors.Validation(fields)
	}

	if creds.Mode == models.ModeSignup {
		account, err := p.createAccount(ctx, creds)
		if err != nil {
			p.log.Warnw("signup failed", "error", err)
			return err
		}
		if err := p.store.Set(ctx, KeyUserID, account.ID); err != nil {
			return apperrors.Wrap(apperrors.ErrPersistence, err)
		}
		p.accountID = account.ID
	}

	p.advance(StepProfile, "mode", creds.Mode)
	return nil
}

// SubmitProfile validates every profile field and expense category, then
// stores the profile as one unit.
func (p *Pipeline) SubmitProfile(ctx context.Context, profile models.Profile) error {
	if err := p.expect(StepProfile); err != nil {
		return err
	}

	if fields := p.rules.ValidateProfile(profile); len(fields) > 0 {
		return apperrors.Validation(fields)
	}

	profile.Expenses = maps.Clone(profile.Expenses)
	if err := p.store.Set(ctx, KeyProfile, profile); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	p.profile = &profile

	p.advance(StepConsent)
	return nil
}

// SubmitConsent records the consent flag. Declining leaves the pipeline at
// the consent step.
func (p *Pipeline) SubmitConsent(ctx context.Context, accepted bool) error {
	if err := p.expect(StepConsent); err != nil {
		return err
	}
	if !accepted {
		return apperrors.ErrConsentRequired
	}

	if err := p.store.Set(ctx, KeyConsent, true); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	p.advance(StepComplete)
	return nil
}

// Dashboard loads the stored profile and derives the dashboard from it.
func (p *Pipeline) Dashboard(ctx context.Context) (*Dashboard, error) {
	if err := p.expect(StepComplete); err != nil {
		return nil, err
	}

	var profile models.Profile
	found, err := p.store.Get(ctx, KeyProfile, &profile)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	if !found {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "profile not found")
	}

	d := BuildDashboard(profile)
	return &d, nil
}

// Account reads the signed-up account back through the gateway.
func (p *Pipeline) Account(ctx context.Context) (*models.Account, error) {
	if p.accountID == "" {
		return nil, apperrors.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	account, err := p.accounts.GetAccount(ctx, p.accountID)
	if err != nil {
		return nil, remoteFailure(ctx, err)
	}
	return account, nil
}

func (p *Pipeline) createAccount(ctx context.Context, creds models.Credentials) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	phone, secret := creds.EmailOrPhone, creds.Secret
	account, err := p.accounts.CreateAccount(ctx, client.SignupRequest{
		Phone:        &phone,
		PasswordHash: &secret,
	})
	if err != nil {
		return nil, remoteFailure(ctx, err)
	}
	return account, nil
}

func (p *Pipeline) expect(step Step) error {
	if p.step != step {
		return apperrors.WithMessage(apperrors.ErrInvalidStep,
			"expected step "+step.String()+", pipeline is at "+p.step.String())
	}
	return nil
}

func (p *Pipeline) advance(next Step, keysAndValues ...any) {
	from := p.step
	p.step = next
	p.log.Infow("onboarding step completed", append([]any{"from", from, "to", next}, keysAndValues...)...)
}

// remoteFailure normalizes a gateway error: structured errors pass through,
// an expired deadline becomes TIMEOUT and anything else PERSISTENCE_FAILED.
func remoteFailure(ctx context.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.ErrTimeout, err)
	}
	return apperrors.Persistence(err.Error(), err)
}
