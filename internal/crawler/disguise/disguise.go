// Package disguise implements the randomized pause the crawler takes between
// airports so its traffic looks less like a bot.
package disguise

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	DefaultMin = 15
	DefaultMax = 60
)

// Draw returns a uniform integer in [min, max]. Reversed bounds are swapped.
// intn must behave like rand.IntN.
func Draw(min, max int, intn func(int) int) int {
	if min > max {
		min, max = max, min
	}
	return min + intn(max-min+1)
}

// Pauser sleeps a random number of whole seconds.
type Pauser struct {
	Min int
	Max int

	// sleep and intn are replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
	intn  func(int) int
}

func NewPauser(min, max int) *Pauser {
	return &Pauser{Min: min, Max: max, sleep: sleepCtx, intn: rand.IntN}
}

// Pause draws a duration and sleeps it one second at a time, calling onTick
// with the seconds still remaining before each step. It returns the seconds
// actually slept; on cancellation that is less than the drawn value.
func (p *Pauser) Pause(ctx context.Context, onTick func(remaining int)) (int, error) {
	total := Draw(p.Min, p.Max, p.intn)

	slept := 0
	for remaining := total; remaining > 0; remaining-- {
		if onTick != nil {
			onTick(remaining)
		}
		if err := p.sleep(ctx, time.Second); err != nil {
			return slept, err
		}
		slept++
	}
	return slept, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
