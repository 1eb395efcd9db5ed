package services

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/response_models"
)

// FooterAdSource loads the sponsor listings eligible for rotation.
type FooterAdSource interface {
	EligibleFooterListings(ctx context.Context) ([]db_models.Listing, error)
}

// ExposureReporter records one shown event per display. The database owns
// the counter; the engine only reports and trusts the value it gets back on
// the next reload.
type ExposureReporter interface {
	IncrementExposure(ctx context.Context, id uuid.UUID) error
}

type RotationState string

const (
	RotationIdle    RotationState = "idle"
	RotationArmed   RotationState = "armed"
	RotationShowing RotationState = "showing"
	RotationHidden  RotationState = "hidden"
)

type RotationConfig struct {
	// ArmDelay is the pause before the first display and between displays.
	ArmDelay time.Duration
	// TickEvery is the countdown resolution while a sponsor is showing.
	TickEvery time.Duration
	// DisplayTicks is how many ticks a sponsor stays visible.
	DisplayTicks int
}

func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		ArmDelay:     5 * time.Second,
		TickEvery:    time.Second,
		DisplayTicks: 30,
	}
}

// RotationConfigFromEnv applies FOOTER_ROTATION_* overrides on top of the
// defaults; unset or unparsable values keep the default.
func RotationConfigFromEnv() RotationConfig {
	cfg := DefaultRotationConfig()
	if v, err := strconv.Atoi(os.Getenv("FOOTER_ROTATION_ARM_SECONDS")); err == nil && v > 0 {
		cfg.ArmDelay = time.Duration(v) * time.Second
	}
	if v, err := strconv.Atoi(os.Getenv("FOOTER_ROTATION_TICK_SECONDS")); err == nil && v > 0 {
		cfg.TickEvery = time.Duration(v) * time.Second
	}
	if v, err := strconv.Atoi(os.Getenv("FOOTER_ROTATION_DISPLAY_TICKS")); err == nil && v > 0 {
		cfg.DisplayTicks = v
	}
	return cfg
}

type FooterRotationService interface {
	Start(ctx context.Context) error
	Stop()
	Reload(ctx context.Context) error
	Current() response_models.FooterAdResponse
	Dismiss()
	DismissShowing(id uuid.UUID)
}

// footerRotation cycles sponsor listings one at a time. All transitions
// run under mu; timer callbacks carry the generation they were scheduled
// under and no-op when a reload or dismissal has bumped it, so a stale
// countdown can never overlap a newer display.
type footerRotation struct {
	mu       sync.Mutex
	source   FooterAdSource
	reporter ExposureReporter
	logger   *zap.Logger
	cfg      RotationConfig

	state     RotationState
	ads       []db_models.Listing
	cursor    int
	current   *db_models.Listing
	remaining int
	gen       uint64
	armTimer  *time.Timer
	tickTimer *time.Timer
}

func NewFooterRotationService(source FooterAdSource, reporter ExposureReporter, cfg RotationConfig, logger *zap.Logger) FooterRotationService {
	if cfg.ArmDelay <= 0 || cfg.TickEvery <= 0 || cfg.DisplayTicks <= 0 {
		cfg = DefaultRotationConfig()
	}
	return &footerRotation{
		source:   source,
		reporter: reporter,
		logger:   logger,
		cfg:      cfg,
		state:    RotationIdle,
	}
}

func (s *footerRotation) Start(ctx context.Context) error {
	return s.Reload(ctx)
}

// Reload refetches the eligible list and restarts rotation from the top.
// Bumping gen cancels every outstanding timer callback for the old list.
func (s *footerRotation) Reload(ctx context.Context) error {
	ads, err := s.source.EligibleFooterListings(ctx)
	if err != nil {
		s.logger.Error("footer ad fetch failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.stopTimersLocked()
	s.ads = ads
	s.cursor = 0
	s.current = nil
	s.remaining = 0

	if len(s.ads) == 0 {
		s.state = RotationIdle
		return nil
	}
	s.state = RotationArmed
	s.scheduleAdvanceLocked()
	return nil
}

func (s *footerRotation) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.stopTimersLocked()
	s.state = RotationIdle
	s.current = nil
}

func (s *footerRotation) stopTimersLocked() {
	if s.armTimer != nil {
		s.armTimer.Stop()
		s.armTimer = nil
	}
	if s.tickTimer != nil {
		s.tickTimer.Stop()
		s.tickTimer = nil
	}
}

func (s *footerRotation) scheduleAdvanceLocked() {
	g := s.gen
	s.armTimer = time.AfterFunc(s.cfg.ArmDelay, func() { s.advance(g) })
}

func (s *footerRotation) scheduleTickLocked() {
	g := s.gen
	s.tickTimer = time.AfterFunc(s.cfg.TickEvery, func() { s.tick(g) })
}

// advance selects the next displayable sponsor in round-robin order. A
// listing whose local exposure snapshot is exhausted is skipped but the
// cursor still moves past it; if a full lap finds nothing the engine goes
// idle until the next reload.
func (s *footerRotation) advance(g uint64) {
	s.mu.Lock()

	if g != s.gen || len(s.ads) == 0 {
		s.mu.Unlock()
		return
	}

	var selected *db_models.Listing
	for i := 0; i < len(s.ads); i++ {
		candidate := &s.ads[s.cursor%len(s.ads)]
		s.cursor++
		if candidate.ExposureExhausted() {
			continue
		}
		selected = candidate
		break
	}

	if selected == nil {
		s.state = RotationIdle
		s.current = nil
		s.mu.Unlock()
		return
	}

	// Keep the local snapshot in step so the exhaustion check holds until
	// the next authoritative fetch.
	selected.ExposureCount++

	shown := *selected
	s.current = &shown
	s.state = RotationShowing
	s.remaining = s.cfg.DisplayTicks
	s.scheduleTickLocked()
	s.mu.Unlock()

	// The report runs outside the lock: a slow store must never stall
	// Current, Dismiss or Reload behind the increment.
	s.report(shown.ID)
}

// report issues exactly one increment per display. A failure is logged and
// the visible state stands; the stale counter corrects itself on reload.
func (s *footerRotation) report(id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.reporter.IncrementExposure(ctx, id); err != nil {
		s.logger.Warn("exposure report failed", zap.String("listing_id", id.String()), zap.Error(err))
	}
}

func (s *footerRotation) tick(g uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g != s.gen || s.state != RotationShowing {
		return
	}

	s.remaining--
	if s.remaining > 0 {
		s.scheduleTickLocked()
		return
	}
	s.hideLocked()
}

// hideLocked leaves the showing state and re-arms for the next sponsor.
// The gen bump kills any tick still in flight for the old display.
func (s *footerRotation) hideLocked() {
	s.gen++
	s.stopTimersLocked()
	s.state = RotationHidden
	s.current = nil
	s.remaining = 0
	s.scheduleAdvanceLocked()
}

// Dismiss is the user closing the sponsor slot early.
func (s *footerRotation) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != RotationShowing {
		return
	}
	s.hideLocked()
}

// DismissShowing hides the slot only while the given listing is still the
// one on display; if the rotation has moved on, the newer display stands.
func (s *footerRotation) DismissShowing(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != RotationShowing || s.current == nil || s.current.ID != id {
		return
	}
	s.hideLocked()
}

func (s *footerRotation) Current() response_models.FooterAdResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := response_models.FooterAdResponse{
		State:     string(s.state),
		Remaining: s.remaining,
	}
	if s.current != nil {
		shown := *s.current
		resp.Listing = &shown
	}
	return resp
}
