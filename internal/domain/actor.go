package domain

import "context"

// Actor identifies who performed a mutation. It is attribution only, nothing is authenticated.
type Actor struct {
	ID   string
	Name string
}

type actorCtxKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(Actor)
	return actor, ok
}
