package rmq_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// fakeFetcher serves fixed pages of two items each.
func fakeFetcher(items []string, pageSize int) rmq.PageFetcher[string] {
	return func(ctx context.Context, params *rmq.QueryParams) (*rmq.Page[string], error) {
		page := 1
		if params != nil && params.Page > 0 {
			page = params.Page
		}

		start := (page - 1) * pageSize
		end := start + pageSize

		if start > len(items) {
			start = len(items)
		}

		if end > len(items) {
			end = len(items)
		}

		pageCount := (len(items) + pageSize - 1) / pageSize

		return &rmq.Page[string]{
			Page:      page,
			PageCount: pageCount,
			PageSize:  pageSize,
			ItemCount: end - start,
			Items:     items[start:end],
		}, nil
	}
}

func TestPageIterator_Next(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c", "d", "e"}
	it := rmq.NewPageIterator(context.Background(), fakeFetcher(items, 2), rmq.NewQueryParams().WithPageSize(2))

	collected := []string{}

	for it.HasNext() {
		item, err := it.Next()
		require.NoError(t, err)

		collected = append(collected, item)
	}

	assert.Equal(t, items, collected)

	_, err := it.Next()
	require.ErrorIs(t, err, rmq.ErrNoMoreItems)
}

func TestPageIterator_Collect(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c"}
	it := rmq.NewPageIterator(context.Background(), fakeFetcher(items, 2), nil)

	collected, err := it.Collect()
	require.NoError(t, err)
	assert.Equal(t, items, collected)
}

func TestPageIterator_EmptyListing(t *testing.T) {
	t.Parallel()

	it := rmq.NewPageIterator(context.Background(), fakeFetcher(nil, 2), nil)

	assert.False(t, it.HasNext())

	collected, err := it.Collect()
	require.NoError(t, err)
	assert.Empty(t, collected)
}

func TestPageIterator_FetchErrorSurfacesFromNext(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("boom")
	it := rmq.NewPageIterator(context.Background(),
		func(ctx context.Context, params *rmq.QueryParams) (*rmq.Page[string], error) {
			return nil, fetchErr
		}, nil)

	_, err := it.Next()
	require.ErrorIs(t, err, fetchErr)
}
