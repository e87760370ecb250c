package authres

import "context"

// Augmenter adds parameters to an outgoing authorization response before it
// is delivered. Augmenters run sequentially in the order they were
// registered, each seeing the effects of the previous ones. An augmenter
// that fails aborts the dispatch.
type Augmenter interface {
	// ID identifies the augmenter when reporting failures.
	ID() string
	// Augment may add entries to params or modify existing ones. The result
	// is informational and must not be changed.
	Augment(ctx context.Context, r Result, params *Params) error
}

// AugmentFunc is executed by augmenters created with NewAugmenter.
type AugmentFunc func(ctx context.Context, r Result, params *Params) error

// NewAugmenter creates an augmenter identified by id that runs fn.
func NewAugmenter(id string, fn AugmentFunc) Augmenter {
	return augmenter{
		id: id,
		fn: fn,
	}
}

type augmenter struct {
	id string
	fn AugmentFunc
}

func (a augmenter) ID() string {
	return a.id
}

func (a augmenter) Augment(ctx context.Context, r Result, params *Params) error {
	return a.fn(ctx, r, params)
}

// NewIssuerAugmenter creates an augmenter that adds the iss response
// parameter as per RFC 9207, informing clients which authorization server
// issued the response.
func NewIssuerAugmenter(issuer string) Augmenter {
	return NewAugmenter("issuer", func(_ context.Context, _ Result, params *Params) error {
		params.Set("iss", issuer)
		return nil
	})
}
