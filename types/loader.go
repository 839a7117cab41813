package types

import "context"

/*
Loader fetches values the cache does not hold, enabling read-through use:

 1. GetOrLoad checks memory and finds no live value
 2. the cache calls Load(key) once, no matter how many callers missed
 3. the loaded value lands in the cache with the max age the Loader chose
 4. every waiting caller receives the same value

Load runs outside the cache lock, so it may block on a database or an API
without stalling other cache operations.
*/
type Loader interface {

	// Load returns the value for key together with the expiration budget
	// the cached copy should carry. Returning an error caches nothing and
	// the error is handed back to every caller of the shared flight.
	Load(ctx context.Context, key string) (any, MaxAge, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, key string) (any, MaxAge, error)

func (f LoaderFunc) Load(ctx context.Context, key string) (any, MaxAge, error) {
	return f(ctx, key)
}
