package concurrency

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ChunkFn handles one chunk. index is the chunk's position in the input.
type ChunkFn[T any] func(ctx context.Context, index int, chunk []T) error

// Chunk splits items into consecutive slices of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = len(items)
	}
	var chunks [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// ForEachChunk fans chunks of items out to at most concurrency workers and
// waits for all of them. The first error cancels the remaining work.
func ForEachChunk[T any](ctx context.Context, items []T, size, concurrency int, fn ChunkFn[T]) error {
	chunks := Chunk(items, size)
	if len(chunks) == 0 {
		return nil
	}
	eg, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		eg.SetLimit(concurrency)
	}
	for i, c := range chunks {
		i, c := i, c
		eg.Go(func() error {
			return fn(ctx, i, c)
		})
	}
	return eg.Wait()
}
