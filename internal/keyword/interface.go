package keyword

import "context"

// UseCase defines the business logic interface for the keyword map.
type UseCase interface {
	List(ctx context.Context) (ListKeywordsOutput, error)
	Set(ctx context.Context, input SetKeywordInput) error
	Remove(ctx context.Context, key string) error

	// Subscribe registers a listener notified synchronously after each
	// successful mutation.
	Subscribe(fn func())
}
