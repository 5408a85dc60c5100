package wish

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/event"
	"github.com/osse101/WishEval_Go/internal/logger"
	"github.com/osse101/WishEval_Go/internal/luck"
	"github.com/osse101/WishEval_Go/internal/metrics"
	"github.com/osse101/WishEval_Go/internal/sentiment"
	"github.com/osse101/WishEval_Go/internal/session"
	"github.com/osse101/WishEval_Go/internal/utils"
)

// Service defines the wish operations
type Service interface {
	Evaluate(ctx context.Context, sessionID, text string) (*domain.Wish, error)
	Support(ctx context.Context, sessionID string, slot int) (*domain.Wish, error)
	Current(ctx context.Context, sessionID string) (*domain.Wish, error)
	Reset(ctx context.Context, sessionID string) error
	ShareLink(ctx context.Context, sessionID string) (domain.ShareLink, error)
	ViewShared(ctx context.Context, sessionID, wishID, text string) (*domain.SharedWish, error)
	SupportShared(ctx context.Context, sessionID, wishID, text string) (*domain.SharedSupportResult, error)
	FriendLuck(ctx context.Context, wishID string) (float64, error)
}

// Config holds service settings
type Config struct {
	// BaseURL is the page friends open from a share link
	BaseURL string
}

// Option customises a service, mainly for tests
type Option func(*service)

// WithIncrementRoller replaces the random support increment generator
func WithIncrementRoller(fn func() float64) Option {
	return func(s *service) { s.rollIncrement = fn }
}

// WithClock replaces time.Now
func WithClock(fn func() time.Time) Option {
	return func(s *service) { s.now = fn }
}

type service struct {
	classifier sentiment.Classifier
	policy     *Policy
	sessions   *session.Store
	tally      luck.Tally
	eventBus   event.Bus
	cfg        Config

	rollIncrement func() float64
	now           func() time.Time
}

// NewService creates a new wish service
func NewService(classifier sentiment.Classifier, policy *Policy, sessions *session.Store, tally luck.Tally, eventBus event.Bus, cfg Config, opts ...Option) Service {
	s := &service{
		classifier:    classifier,
		policy:        policy,
		sessions:      sessions,
		tally:         tally,
		eventBus:      eventBus,
		cfg:           cfg,
		rollIncrement: RollIncrement,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RollIncrement returns a random support increment in [1, 10] at one decimal
func RollIncrement() float64 {
	return utils.RoundTo(utils.RandomFloatRange(domain.MinIncrement, domain.MaxIncrement), 1)
}

// Evaluate classifies the wish, scores it under the active variant and makes
// it the session's current wish.
func (s *service) Evaluate(ctx context.Context, sessionID, text string) (*domain.Wish, error) {
	log := logger.FromContext(ctx)

	trimmed := strings.TrimSpace(text)
	// Count what the classifier will actually see, so control characters
	// cannot pad a wish past the minimum.
	if visible := utf8.RuneCountInString(sentiment.NormalizeText(trimmed)); visible < domain.MinWishRunes {
		return nil, fmt.Errorf("%w: %d characters", domain.ErrWishTooShort, visible)
	}
	if n := utf8.RuneCountInString(trimmed); n > domain.MaxWishRunes {
		return nil, fmt.Errorf("%w: %d characters", domain.ErrWishTooLong, n)
	}

	variant := s.policy.Active()
	if err := pace(ctx, variant.Pacing); err != nil {
		return nil, err
	}

	result, err := s.classifier.Classify(ctx, utils.TruncateRunes(trimmed, domain.MaxClassifierRunes))
	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	w := &domain.Wish{
		ID:        NewWishID(trimmed, s.now()),
		Text:      trimmed,
		Variant:   variant.Name,
		CreatedAt: s.now(),
	}

	outcome := domain.OutcomeAccepted
	switch {
	case err != nil:
		log.Warn("Classifier failed, using fallback verdict", "variant", variant.Name, "error", err)
		outcome = domain.OutcomeFallback
		w.Probability = variant.FallbackProbability
		w.Evaluation = domain.Evaluation{
			Label:    domain.LabelPositive,
			Score:    variant.FallbackScore,
			Accepted: true,
			Fallback: true,
			Message:  FallbackMessage(variant.FallbackProbability),
		}
		if variant.ShowErrorDetail {
			w.Evaluation.ErrorDetail = utils.TruncateRunes(err.Error(), domain.ErrorDetailRunes)
		}

	default:
		verdict, overridden := variant.ApplyOverride(trimmed, result)
		w.Evaluation = domain.Evaluation{
			Label:      verdict.Label,
			Score:      verdict.Score,
			Overridden: overridden,
		}
		if verdict.IsPositive() {
			w.Evaluation.Accepted = true
			w.Evaluation.Message = MsgAccepted
			w.Probability = variant.Probability(verdict.Score)
		} else {
			outcome = domain.OutcomeRejected
			w.Evaluation.Message = MsgNotSpecific
		}
	}

	if w.Evaluation.Accepted {
		w.Slots = s.rollSlots(variant)
		w.Celebrate = w.Probability >= domain.CelebrationThreshold
	}

	if _, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		sess.Wish = w.Clone()
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to store wish: %w", err)
	}

	log.Info("Wish evaluated",
		"wish_id", w.ID,
		"variant", variant.Name,
		"outcome", outcome,
		"label", w.Evaluation.Label,
		"score", w.Evaluation.Score,
		"probability", w.Probability)

	s.publish(ctx, event.NewWishEvaluatedEvent(sessionID, w, outcome))
	return w.Clone(), nil
}

func (s *service) rollSlots(v Variant) []domain.SupportSlot {
	slots := make([]domain.SupportSlot, v.SupportSlots)
	for i := range slots {
		inc := v.FixedIncrement
		if inc <= 0 {
			inc = s.rollIncrement()
		}
		slots[i] = domain.SupportSlot{Index: i, Increment: inc}
	}
	return slots
}

// Support consumes one of the owner's slots. Each slot applies at most once.
func (s *service) Support(ctx context.Context, sessionID string, slot int) (*domain.Wish, error) {
	var applied domain.SupportSlot

	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		w := sess.Wish
		if w == nil {
			return domain.ErrNoActiveWish
		}
		if !w.Evaluation.Accepted {
			return domain.ErrWishNotAccepted
		}
		if slot < 0 || slot >= len(w.Slots) {
			return fmt.Errorf("%w: %d", domain.ErrSlotNotFound, slot)
		}
		if w.Slots[slot].Used {
			return fmt.Errorf("%w: %d", domain.ErrSlotAlreadyUsed, slot)
		}

		w.Slots[slot].Used = true
		applied = w.Slots[slot]
		w.Probability = addProbability(w.Probability, applied.Increment)
		w.Celebrate = w.Probability >= domain.CelebrationThreshold
		return nil
	})
	if err != nil {
		return nil, err
	}

	w := sess.Wish
	logger.FromContext(ctx).Info("Wish supported",
		"wish_id", w.ID,
		"slot", slot,
		"increment", applied.Increment,
		"probability", w.Probability)

	s.publish(ctx, event.NewWishSupportedEvent(sessionID, w, slot, applied.Increment))
	return w, nil
}

// Current returns the session's wish.
func (s *service) Current(ctx context.Context, sessionID string) (*domain.Wish, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrNoActiveWish
		}
		return nil, err
	}
	if sess.Wish == nil {
		return nil, domain.ErrNoActiveWish
	}
	return sess.Wish, nil
}

// Reset clears everything the session has done, including support dedupe.
func (s *service) Reset(ctx context.Context, sessionID string) error {
	var wishID string
	_, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		if sess.Wish != nil {
			wishID = sess.Wish.ID
		}
		sess.Wish = nil
		sess.Offers = make(map[string]float64)
		sess.Supported = make(map[string]float64)
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Wish session reset", "wish_id", wishID)
	s.publish(ctx, event.NewWishResetEvent(sessionID, wishID))
	return nil
}

// ShareLink builds the invitation link for the session's accepted wish.
func (s *service) ShareLink(ctx context.Context, sessionID string) (domain.ShareLink, error) {
	w, err := s.Current(ctx, sessionID)
	if err != nil {
		return domain.ShareLink{}, err
	}
	if !w.Evaluation.Accepted {
		return domain.ShareLink{}, domain.ErrWishNotAccepted
	}
	return BuildShareLink(s.cfg.BaseURL, w.ID, w.Text), nil
}

// ViewShared prepares what a friend sees. The offered increment is pinned to
// the visiting session so reloading the page does not reroll it.
func (s *service) ViewShared(ctx context.Context, sessionID, wishID, text string) (*domain.SharedWish, error) {
	wishID, text, err := ParseShareParams(wishID, text)
	if err != nil {
		return nil, err
	}

	view := &domain.SharedWish{ID: wishID, Text: text}
	if _, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		if sess.HasSupported(wishID) {
			view.AlreadySupported = true
			view.Offer = sess.Supported[wishID]
			return nil
		}
		inc, ok := sess.Offers[wishID]
		if !ok {
			inc = s.rollIncrement()
			sess.Offers[wishID] = inc
		}
		view.Offer = inc
		return nil
	}); err != nil {
		return nil, err
	}

	total, err := s.tally.Total(ctx, wishID)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to read friend luck", "wish_id", wishID, "error", err)
	}
	view.FriendLuck = total

	if view.AlreadySupported {
		view.Message = MsgAlreadySupported
	} else {
		view.Message = MsgSharedInvite
	}
	return view, nil
}

// SupportShared adds the visiting session's luck to a friend's wish, once.
// The wish text is only needed for a first support; a repeat is a no-op.
func (s *service) SupportShared(ctx context.Context, sessionID, wishID, text string) (*domain.SharedSupportResult, error) {
	if err := ValidateShareWishID(wishID); err != nil {
		return nil, err
	}

	if err := pace(ctx, s.policy.Active().Pacing); err != nil {
		return nil, err
	}

	res := &domain.SharedSupportResult{WishID: wishID}
	if _, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		if sess.HasSupported(wishID) {
			res.AlreadySupported = true
			res.Increment = sess.Supported[wishID]
			return nil
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrInvalidShareLink, ParamWish)
		}

		inc, ok := sess.Offers[wishID]
		if !ok {
			inc = s.rollIncrement()
		}
		// Tally first so a failed write leaves the session able to retry.
		total, err := s.tally.Add(ctx, wishID, inc)
		if err != nil {
			return fmt.Errorf("failed to add friend luck: %w", err)
		}
		delete(sess.Offers, wishID)
		sess.Supported[wishID] = inc
		res.Increment = inc
		res.FriendLuck = total
		return nil
	}); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	if res.AlreadySupported {
		metrics.SharedSupports.WithLabelValues(domain.SharedResultDuplicate).Inc()
		res.Message = MsgAlreadySupported
		if total, err := s.tally.Total(ctx, wishID); err == nil {
			res.FriendLuck = total
		}
		log.Info("Repeat shared support ignored", "wish_id", wishID)
		return res, nil
	}

	res.Message = SharedThanksMessage(res.Increment)
	log.Info("Shared support applied", "wish_id", wishID, "increment", res.Increment, "friend_luck", res.FriendLuck)
	s.publish(ctx, event.NewWishSharedSupportEvent(wishID, res.Increment, res.FriendLuck))
	return res, nil
}

// FriendLuck returns the total luck friends have sent to wishID.
func (s *service) FriendLuck(ctx context.Context, wishID string) (float64, error) {
	if !domain.IsValidWishID(wishID) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidWishID, wishID)
	}
	return s.tally.Total(ctx, wishID)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Warn("Failed to publish wish event", "type", evt.Type, "error", err)
	}
}

func addProbability(p, inc float64) float64 {
	return utils.Clamp(utils.RoundTo(p+inc, 1), domain.MinProbability, domain.MaxProbability)
}

// pace waits for the cosmetic delay or until ctx is done.
func pace(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
