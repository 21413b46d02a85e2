package api

import (
	"context"
	"net/url"

	"github.com/logspect/logspect-client/pkg/listview"
)

// listSource adapts a ListResponse endpoint to a list-view source.
func listSource[T any](fetch func(ctx context.Context, params url.Values) (ListResponse[T], error)) listview.Source[T] {
	return func(ctx context.Context, params url.Values) (listview.Page[T], error) {
		resp, err := fetch(ctx, params)
		if err != nil {
			return listview.Page[T]{}, err
		}
		return listview.Page[T]{Items: resp.Items, Total: resp.Total}, nil
	}
}

// sliceSource adapts a plain-array endpoint to a client-paginated
// list-view source.
func sliceSource[T any](fetch func(ctx context.Context, params url.Values) ([]T, error)) listview.Source[T] {
	return func(ctx context.Context, params url.Values) (listview.Page[T], error) {
		items, err := fetch(ctx, params)
		if err != nil {
			return listview.Page[T]{}, err
		}
		return listview.Page[T]{Items: items, Total: len(items)}, nil
	}
}
