package rmq

import (
	"context"
	"errors"
)

// ErrNoMoreItems is returned by PageIterator.Next after the last item.
var ErrNoMoreItems = errors.New("no more items")

// PageFetcher fetches one page of a paginated listing.
type PageFetcher[T any] func(ctx context.Context, params *QueryParams) (*Page[T], error)

// PageIterator walks a paginated listing item by item, fetching pages
// lazily. It is not safe for concurrent use.
type PageIterator[T any] struct {
	ctx     context.Context
	fetch   PageFetcher[T]
	params  QueryParams
	current *Page[T]
	index   int
	done    bool
}

// NewPageIterator creates an iterator over the listing served by fetch.
// params supplies the page size and filters; the page number is managed by
// the iterator.
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher[T], params *QueryParams) *PageIterator[T] {
	var copied QueryParams
	if params != nil {
		copied = *params
	}

	if copied.Page == 0 {
		copied.Page = 1
	}

	return &PageIterator[T]{
		ctx:    ctx,
		fetch:  fetch,
		params: copied,
	}
}

// HasNext reports whether another item is available without fetching it.
// The first call fetches the first page.
func (it *PageIterator[T]) HasNext() bool {
	if it.done {
		return false
	}

	if it.current == nil {
		if err := it.fetchPage(); err != nil {
			// Surface the error from the Next that follows.
			return true
		}
	}

	if it.index < len(it.current.Items) {
		return true
	}

	return it.current.HasNext()
}

// Next returns the next item, fetching the next page when the current one
// is exhausted. It returns ErrNoMoreItems after the last item.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.done {
		return zero, ErrNoMoreItems
	}

	if it.current == nil {
		if err := it.fetchPage(); err != nil {
			return zero, err
		}
	}

	if it.index >= len(it.current.Items) {
		if !it.current.HasNext() {
			it.done = true

			return zero, ErrNoMoreItems
		}

		it.params.Page = it.current.Page + 1
		if err := it.fetchPage(); err != nil {
			return zero, err
		}

		if len(it.current.Items) == 0 {
			it.done = true

			return zero, ErrNoMoreItems
		}
	}

	item := it.current.Items[it.index]
	it.index++

	return item, nil
}

// Collect drains the iterator into a slice.
func (it *PageIterator[T]) Collect() ([]T, error) {
	var items []T

	for {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return items, nil
			}

			return items, err
		}

		items = append(items, item)
	}
}

func (it *PageIterator[T]) fetchPage() error {
	page, err := it.fetch(it.ctx, &it.params)
	if err != nil {
		return err
	}

	it.current = page
	it.index = 0

	return nil
}
