// Package mazeapi provides the request and response structures of the maze routes.
package mazeapi

import (
	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// CreateMazeRequest represents a request to generate a new maze.
type CreateMazeRequest struct {
	Width int `json:"width" binding:"required"`
}

// CellResponse holds the walls of a single cell.
type CellResponse struct {
	Right  bool `json:"right"`
	Bottom bool `json:"bottom"`
}

// MazeResponse describes a generated maze. Cells are listed in row-major order.
type MazeResponse struct {
	ID               string         `json:"id"`
	Width            int            `json:"width"`
	Entry            int            `json:"entry"`
	Exit             int            `json:"exit"`
	Edges            int            `json:"edges"`
	GenerationTimeMs float64        `json:"generation_time_ms"`
	CreatedAt        int64          `json:"created_at"`
	Cells            []CellResponse `json:"cells"`
}

// PathResponse holds the cell indices from the entry to the exit. Length is
// the number of moves, one less than the number of cells.
type PathResponse struct {
	Path   []int `json:"path"`
	Length int   `json:"length"`
}

// HistoryResponse lists the ids of the user's recent mazes, newest first.
type HistoryResponse struct {
	IDs []string `json:"ids"`
}

// ReportResponse is the stored metadata of a generated maze.
type ReportResponse struct {
	ID               string  `json:"id"`
	MazeID           string  `json:"maze_id"`
	Width            int     `json:"width"`
	Edges            int     `json:"edges"`
	PathLength       int     `json:"path_length"` // Moves from entry to exit
	GenerationTimeMs float64 `json:"generation_time_ms"`
	CreatedAt        int64   `json:"created_at"`
}

func newMazeResponse(s *dmn.MazeSession) *MazeResponse {
	cells := s.Grid.Cells()
	resp := &MazeResponse{
		ID:               s.ID.String(),
		Width:            s.Grid.Width(),
		Entry:            s.Grid.Entry(),
		Exit:             s.Grid.Exit(),
		Edges:            s.Grid.EdgeCount(),
		GenerationTimeMs: float64(s.GenerationTime.Microseconds()) / 1000,
		CreatedAt:        s.CreatedAt.Unix(),
		Cells:            make([]CellResponse, len(cells)),
	}
	for i, c := range cells {
		resp.Cells[i] = CellResponse{Right: c.HasBorderRight, Bottom: c.HasBorderBottom}
	}
	return resp
}

func newReportResponse(r *dmn.Report) ReportResponse {
	return ReportResponse{
		ID:               r.ID.String(),
		MazeID:           r.MazeID.String(),
		Width:            r.Width,
		Edges:            r.Edges,
		PathLength:       r.PathLength,
		GenerationTimeMs: float64(r.GenerationTime.Microseconds()) / 1000,
		CreatedAt:        r.CreatedAt.Unix(),
	}
}
