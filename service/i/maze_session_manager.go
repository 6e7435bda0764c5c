package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeSessionManager generates mazes and keeps them for their owners.
type MazeSessionManager interface {
	// NewSession generates a maze of the given width for owner.
	NewSession(ctx context.Context, owner uuid.UUID, width int) (*dmn.MazeSession, error)

	// Session returns the owner's session with the given id.
	Session(owner, id uuid.UUID) (*dmn.MazeSession, error)

	// Solve returns the path from the entry to the exit of the owner's maze.
	Solve(owner, id uuid.UUID) ([]int, error)

	// History returns the ids of the owner's recent mazes, newest first.
	History(ctx context.Context, owner uuid.UUID) ([]uuid.UUID, error)

	// Reports returns the stored metadata of the owner's mazes, newest first.
	Reports(ctx context.Context, owner uuid.UUID) ([]*dmn.Report, error)
}
