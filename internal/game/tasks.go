package game

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Effect is a state change produced by a Task. It must run on the
// goroutine that owns the Game.
type Effect func(*Game)

// Task is the slow half of an action, usually a call to the content
// provider. It must not touch the Game's state directly.
type Task func(ctx context.Context) Effect

// Await runs tasks concurrently and applies their effects on the calling
// goroutine in completion order. Tasks spawned by effects are not followed.
func Await(ctx context.Context, g *Game, tasks ...Task) error {
	if len(tasks) == 0 {
		return nil
	}
	effects := make(chan Effect, len(tasks))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(4)
	go func() {
		for _, t := range tasks {
			eg.Go(func() error {
				effects <- t(gctx)
				return nil
			})
		}
		eg.Wait()
		close(effects)
	}()
	for e := range effects {
		g.Apply(e)
	}
	return ctx.Err()
}
