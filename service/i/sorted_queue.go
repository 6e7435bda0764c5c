package i

import "context"

// SortedQueue is a scored set of members kept ordered by score.
type SortedQueue interface {
	// Enqueue adds a member with the given score.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// DequeTops removes and returns amount members with the lowest scores.
	// Nothing is removed when the queue holds fewer than amount members.
	DequeTops(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Count returns the number of members in the queue.
	Count(ctx context.Context, queueKey string) int64

	// Members returns every member ordered from the highest score to the lowest.
	Members(ctx context.Context, queueKey string) ([]string, error)
}
