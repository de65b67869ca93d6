package searchapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vinom-labs/repmaze/api/identity"
	"github.com/vinom-labs/repmaze/maze"
	"github.com/vinom-labs/repmaze/normalize"
	"github.com/vinom-labs/repmaze/quizmaster"
	"github.com/vinom-labs/repmaze/service"
	"github.com/vinom-labs/repmaze/solver"
)

// Controller serves the one-shot core endpoints and the job-backed search
// endpoints, grounded on the request/response DTO shape of
// api/game/matchmaking.go, generalized from game matches to search jobs.
type Controller struct {
	jobs *service.JobManager
}

// NewController builds a Controller backed by the given JobManager.
func NewController(jobs *service.JobManager) *Controller {
	return &Controller{jobs: jobs}
}

// RegisterPublic registers the unauthenticated one-shot core endpoints.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/solve", c.solve)
	route.POST("/norm", c.norm)
}

// RegisterProtected registers the operator-only search-job endpoints.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	searches := route.Group("/searches")
	{
		searches.POST("", c.launch)
		searches.GET("/:id", c.status)
		searches.DELETE("/:id", c.cancel)
	}
}

func (c *Controller) solve(ctx *gin.Context) {
	var req SolveRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := maze.Parse(req.NTerm, req.Maze)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var length int
	var path solver.Path
	if req.BFS {
		path, length = solver.BFS(m)
	} else {
		path, length = solver.IDDFS(m, solver.Options{})
	}

	if length == solver.NoPath {
		ctx.JSON(http.StatusOK, &SolveResponse{HasPath: false})
		return
	}
	ctx.JSON(http.StatusOK, &SolveResponse{HasPath: true, Length: length, Path: path.String()})
}

func (c *Controller) norm(ctx *gin.Context) {
	var req NormRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := maze.Parse(req.NTerm, req.Maze)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alreadyCanonical := normalize.IsNormalized(m)
	normalize.Normalize(m)
	ctx.JSON(http.StatusOK, &NormResponse{Normalized: m.String(), AlreadyCanonical: alreadyCanonical})
}

func (c *Controller) launch(ctx *gin.Context) {
	var req SearchRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	operatorID := operatorIDFromContext(ctx)

	var (
		id  uuid.UUID
		err error
	)
	switch req.Strategy {
	case "exhaustive":
		id, err = c.jobs.LaunchExhaustive(operatorID, quizmaster.ExhaustiveOptions{
			NTerm: req.NTerm, KMin: req.KMin, KMax: req.KMax, LengthCap: req.LengthCap,
		})
	case "random":
		id, err = c.jobs.LaunchRandom(operatorID, quizmaster.RandomOptions{
			NTerm: req.NTerm, KMin: req.KMin, KMax: req.KMax, LengthCap: req.LengthCap, Seed: req.Seed,
		})
	case "topdown":
		id, err = c.jobs.LaunchTopDown(operatorID, quizmaster.TopDownOptions{
			NTerm: req.NTerm, LengthCap: req.LengthCap,
		})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown strategy: " + req.Strategy})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusAccepted, &SearchLaunchedResponse{JobID: id.String()})
}

func (c *Controller) status(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	run, err := c.jobs.Status(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &SearchStatusResponse{
		Status:     string(run.Status),
		BestLength: run.BestLength,
		BestMaze:   run.BestMazeString,
		BestPath:   run.BestPathString,
	})
}

func (c *Controller) cancel(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	if err := c.jobs.Cancel(id); err != nil {
		switch err {
		case service.ErrJobNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.Status(http.StatusOK)
}

// operatorIDFromContext extracts the operator ID stashed by
// identityapi.Authorize, defaulting to the nil UUID if it is missing or
// malformed (never expected once Authorize has run, but this keeps the
// handler total).
func operatorIDFromContext(ctx *gin.Context) uuid.UUID {
	claimsVal, ok := ctx.Get(identityapi.ContextOperatorClaims)
	if !ok {
		return uuid.Nil
	}
	claims, ok := claimsVal.(map[string]interface{})
	if !ok {
		return uuid.Nil
	}
	raw, ok := claims["operatorID"].(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
