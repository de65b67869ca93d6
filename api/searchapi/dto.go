// Package searchapi exposes the one-shot core operations (solve, normalize)
// and the job-backed quizmaster searches over HTTP.
package searchapi

// SolveRequest asks for the shortest Start->Goal path of a maze string.
type SolveRequest struct {
	NTerm int    `json:"nterm" binding:"required"`
	Maze  string `json:"maze" binding:"required"`
	BFS   bool   `json:"bfs"`
}

// SolveResponse reports whether a path exists and, if so, its length and
// textual form.
type SolveResponse struct {
	HasPath bool   `json:"hasPath"`
	Length  int    `json:"length,omitempty"`
	Path    string `json:"path,omitempty"`
}

// NormRequest asks for the canonical form of a maze string.
type NormRequest struct {
	NTerm int    `json:"nterm" binding:"required"`
	Maze  string `json:"maze" binding:"required"`
}

// NormResponse carries the normalized maze string and whether the input
// was already normalized.
type NormResponse struct {
	Normalized       string `json:"normalized"`
	AlreadyCanonical bool   `json:"alreadyCanonical"`
}

// SearchRequest launches a quizmaster search job.
type SearchRequest struct {
	Strategy  string `json:"strategy" binding:"required"` // "exhaustive" | "random" | "topdown"
	NTerm     int    `json:"nterm" binding:"required"`
	KMin      int    `json:"kMin"`
	KMax      int    `json:"kMax"`
	LengthCap int    `json:"lengthCap"`
	Seed      uint64 `json:"seed"`
}

// SearchLaunchedResponse is returned immediately after a search is queued.
type SearchLaunchedResponse struct {
	JobID string `json:"jobId"`
}

// SearchStatusResponse reports a job's current lifecycle status and, once
// finished, its best result.
type SearchStatusResponse struct {
	Status     string `json:"status"`
	BestLength int    `json:"bestLength,omitempty"`
	BestMaze   string `json:"bestMaze,omitempty"`
	BestPath   string `json:"bestPath,omitempty"`
}
