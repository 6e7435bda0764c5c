// Package domain holds the entities shared by the services, repositories and API.
package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeSession is a generated maze held in memory for its owner.
type MazeSession struct {
	ID             uuid.UUID
	Owner          uuid.UUID
	Grid           *maze.Grid
	CreatedAt      time.Time
	GenerationTime time.Duration
}

// Report is the metadata recorded for each generated maze. It carries no
// walls or connections, so a maze cannot be rebuilt from it.
type Report struct {
	ID             uuid.UUID     `bson:"_id"`
	MazeID         uuid.UUID     `bson:"mazeId"`
	OwnerID        uuid.UUID     `bson:"ownerId"`
	Width          int           `bson:"width"`
	Edges          int           `bson:"edges"`
	PathLength     int           `bson:"pathLength"` // Moves from entry to exit
	GenerationTime time.Duration `bson:"generationTime"`
	CreatedAt      time.Time     `bson:"createdAt"`
}
