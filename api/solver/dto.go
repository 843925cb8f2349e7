// Package solverapi provides structures and utilities for driving maze
// generation and search runs over REST.
package solverapi

import (
	"github.com/abel-mekonn/pathviz-api/maze"
	"github.com/google/uuid"
)

// RegenerateMazeRequest asks for a fresh maze. Zero-valued fields fall back
// to the configured defaults (and, for the seed, to the clock).
type RegenerateMazeRequest struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`
}

// CellResponse is a cell position in API responses.
type CellResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func toCellResponse(pos maze.CellPosition) CellResponse {
	return CellResponse{Row: pos.Row, Col: pos.Col}
}

func toCellResponses(positions []maze.CellPosition) []CellResponse {
	cells := make([]CellResponse, 0, len(positions))
	for _, pos := range positions {
		cells = append(cells, toCellResponse(pos))
	}
	return cells
}

// CellWallsResponse is the wall state of one cell.
type CellWallsResponse struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// MazeResponse describes the current maze layout for clients to draw. ASCII
// carries the human-readable rendering of the same walls.
type MazeResponse struct {
	Width  int                   `json:"width"`
	Height int                   `json:"height"`
	Start  CellResponse          `json:"start"`
	End    CellResponse          `json:"end"`
	Cells  [][]CellWallsResponse `json:"cells"`
	ASCII  string                `json:"ascii"`
}

// StartRunRequest asks for a new search run.
type StartRunRequest struct {
	Strategy string `json:"strategy" binding:"required"`
}

// StartRunResponse carries the ID of a newly created run.
type StartRunResponse struct {
	ID uuid.UUID `json:"id"`
}

// RunSnapshotResponse is the steppable view of a run.
type RunSnapshotResponse struct {
	ID           uuid.UUID      `json:"id"`
	Strategy     string         `json:"strategy"`
	Status       string         `json:"status"`
	Settled      []CellResponse `json:"settled"`
	FrontierSize int            `json:"frontier_size"`
}

// PathResponse carries a reconstructed solution path.
type PathResponse struct {
	Path   []CellResponse `json:"path"`
	Length int            `json:"length"`
}
