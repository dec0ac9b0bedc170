package generation

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/external"
)

// attemptState is the state of one image's retry state machine
type attemptState int

const (
	stateAttempting attemptState = iota
	stateRetrying
	stateExhausted
	stateSucceeded
)

func (s attemptState) String() string {
	switch s {
	case stateAttempting:
		return "attempting"
	case stateRetrying:
		return "retrying"
	case stateExhausted:
		return "exhausted"
	case stateSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// imageOutcome is the terminal result of generating one image
type imageOutcome struct {
	urls     []string
	attempts int
	state    attemptState
	err      error
}

// generateImage drives one image through attempting -> retrying -> ... until it
// succeeds or exhausts MaxAttempts.
func (s *Service) generateImage(ctx context.Context, prompt external.ImagePrompt) imageOutcome {
	out := imageOutcome{state: stateAttempting}

	for {
		switch out.state {
		case stateAttempting:
			out.attempts++
			urls, err := s.images.Generate(ctx, prompt)
			usable := entity.UsableURLs(urls)
			switch {
			case err == nil && len(usable) > 0:
				out.urls = usable
				out.err = nil
				out.state = stateSucceeded
			case err == nil:
				out.err = errors.New("provider returned no image")
				out.state = s.nextAfterFailure(out.attempts)
			default:
				out.err = err
				out.state = s.nextAfterFailure(out.attempts)
			}

		case stateRetrying:
			s.logger.Debug("Retrying image generation", map[string]any{
				"attempt": out.attempts + 1,
				"error":   out.err.Error(),
			})
			wait := coreport.Duration(int64(s.config.RetryBackoff) * int64(out.attempts))
			if err := s.timeProvider.After(ctx, wait); err != nil {
				out.err = err
				out.state = stateExhausted
				continue
			}
			out.state = stateAttempting

		case stateExhausted, stateSucceeded:
			return out
		}
	}
}

func (s *Service) nextAfterFailure(attempts int) attemptState {
	if attempts >= s.config.MaxAttempts {
		return stateExhausted
	}
	return stateRetrying
}

// generateBatch produces count images in parallel. Images that exhaust their attempts are
// dropped; the returned error is the last failure seen and only matters when urls is empty.
func (s *Service) generateBatch(ctx context.Context, prompt string, count int) (urls []string, attempts int, lastErr error) {
	outcomes := make([]imageOutcome, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			outcomes[i] = s.generateImage(gctx, external.ImagePrompt{
				Prompt: prompt,
				Width:  s.config.ImageWidth,
				Height: s.config.ImageHeight,
				Seed:   s.seed(),
			})
			return nil
		})
	}
	_ = g.Wait()

	for _, o := range outcomes {
		attempts += o.attempts
		if o.state == stateSucceeded {
			urls = append(urls, o.urls...)
			continue
		}
		lastErr = o.err
	}
	return urls, attempts, lastErr
}
