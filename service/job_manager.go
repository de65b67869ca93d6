package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vinom-labs/repmaze/infrastruture/repo"
	"github.com/vinom-labs/repmaze/infrastruture/runlock"
	"github.com/vinom-labs/repmaze/quizmaster"
	"github.com/vinom-labs/repmaze/service/i"
	"github.com/vinom-labs/repmaze/solver"
)

// ErrJobNotFound is returned when a job ID has no corresponding run.
var ErrJobNotFound = errors.New("job not found")

// ErrNotCancellable is returned when Cancel is called on a job whose
// strategy runs to completion on its own and cannot be interrupted.
var ErrNotCancellable = errors.New("this search strategy cannot be cancelled mid-run")

type job struct {
	run    *repo.Run
	cancel context.CancelFunc
}

// JobManager tracks in-flight and completed quizmaster searches by ID,
// grounded on the teacher's mutex-protected session map
// (service/game_session_manager.go), generalized from game sessions to
// search runs.
type JobManager struct {
	mu      sync.RWMutex
	jobs    map[uuid.UUID]*job
	runRepo i.RunRepo
	runLock *runlock.Lock
	logger  Logger
}

// Logger is the subset of behavior JobManager needs from a logger; a
// *logging.Logger satisfies it via its Info/Error methods.
type Logger interface {
	Info(msg string)
	Error(msg string)
}

// NewJobManager builds a JobManager persisting run records through runRepo,
// serializing actual search execution through runLock so that at most one
// quizmaster run executes at a time across the deployment.
func NewJobManager(runRepo i.RunRepo, runLock *runlock.Lock, logger Logger) *JobManager {
	return &JobManager{
		jobs:    make(map[uuid.UUID]*job),
		runRepo: runRepo,
		runLock: runLock,
		logger:  logger,
	}
}

func (jm *JobManager) save(run *repo.Run) {
	if err := jm.runRepo.Save(run); err != nil {
		jm.logger.Error("saving run " + run.ID.String() + ": " + err.Error())
	}
}

func (jm *JobManager) register(run *repo.Run, cancel context.CancelFunc) {
	jm.mu.Lock()
	jm.jobs[run.ID] = &job{run: run, cancel: cancel}
	jm.mu.Unlock()
	jm.save(run)
}

func (jm *JobManager) finish(id uuid.UUID, best quizmaster.Best, cancelled bool) {
	jm.mu.Lock()
	j, ok := jm.jobs[id]
	jm.mu.Unlock()
	if !ok {
		return
	}

	j.run.FinishedAt = time.Now()
	j.run.BestLength = best.Length
	switch {
	case cancelled:
		j.run.Status = repo.RunCancelled
	case best.Maze == nil:
		j.run.Status = repo.RunFruitless
	default:
		j.run.Status = repo.RunCompleted
		j.run.BestMazeString = best.Maze.String()
		j.run.BestPathString = (solver.Path{States: best.Path}).String()
	}
	jm.save(j.run)
	jm.logger.Info("finished run " + id.String() + " status=" + string(j.run.Status))
}

// fail marks a job as failed after its goroutine panicked. The core
// packages never recover from resource exhaustion themselves; this is the
// service boundary that does, per the job-manager error mapping.
func (jm *JobManager) fail(id uuid.UUID, r interface{}) {
	jm.mu.Lock()
	j, ok := jm.jobs[id]
	jm.mu.Unlock()
	if !ok {
		return
	}
	j.run.FinishedAt = time.Now()
	j.run.Status = repo.RunFailed
	jm.save(j.run)
	jm.logger.Error("run " + id.String() + " panicked: " + fmt.Sprint(r))
}

// LaunchExhaustive starts an exhaustive combination search in the
// background. It cannot be cancelled mid-run: the search space is finite
// and bounded by KMax.
func (jm *JobManager) LaunchExhaustive(operatorID uuid.UUID, opts quizmaster.ExhaustiveOptions) (uuid.UUID, error) {
	held, err := jm.acquireLock()
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	run := &repo.Run{
		ID: id, OperatorID: operatorID, Strategy: "exhaustive",
		NTerm: opts.NTerm, KMin: opts.KMin, KMax: opts.KMax,
		LengthCap: opts.LengthCap, Status: repo.RunRunning, StartedAt: time.Now(),
	}
	jm.register(run, nil)

	go func() {
		defer jm.releaseLock(held)
		defer func() {
			if r := recover(); r != nil {
				jm.fail(id, r)
			}
		}()
		best := quizmaster.Exhaustive(opts)
		jm.finish(id, best, false)
	}()
	return id, nil
}

// LaunchRandom starts a seeded random-sampling search in the background,
// cancellable via Cancel.
func (jm *JobManager) LaunchRandom(operatorID uuid.UUID, opts quizmaster.RandomOptions) (uuid.UUID, error) {
	held, err := jm.acquireLock()
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	run := &repo.Run{
		ID: id, OperatorID: operatorID, Strategy: "random",
		NTerm: opts.NTerm, KMin: opts.KMin, KMax: opts.KMax, Seed: opts.Seed,
		LengthCap: opts.LengthCap, Status: repo.RunRunning, StartedAt: time.Now(),
	}
	jm.register(run, cancel)

	go func() {
		defer jm.releaseLock(held)
		defer func() {
			if r := recover(); r != nil {
				jm.fail(id, r)
			}
		}()
		best := quizmaster.Random(ctx, opts)
		jm.finish(id, best, ctx.Err() != nil)
	}()
	return id, nil
}

// LaunchTopDown starts a top-down port-deletion search in the background,
// cancellable via Cancel.
func (jm *JobManager) LaunchTopDown(operatorID uuid.UUID, opts quizmaster.TopDownOptions) (uuid.UUID, error) {
	held, err := jm.acquireLock()
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	run := &repo.Run{
		ID: id, OperatorID: operatorID, Strategy: "topdown",
		NTerm: opts.NTerm, LengthCap: opts.LengthCap,
		Status: repo.RunRunning, StartedAt: time.Now(),
	}
	jm.register(run, cancel)

	go func() {
		defer jm.releaseLock(held)
		defer func() {
			if r := recover(); r != nil {
				jm.fail(id, r)
			}
		}()
		best := quizmaster.TopDown(ctx, opts)
		jm.finish(id, best, ctx.Err() != nil)
	}()
	return id, nil
}

// acquireLock acquires the distributed run lock if one is configured; a nil
// runLock (e.g. in tests, or a single-process deployment) always succeeds.
func (jm *JobManager) acquireLock() (*runlock.Held, error) {
	if jm.runLock == nil {
		return nil, nil
	}
	return jm.runLock.Acquire()
}

func (jm *JobManager) releaseLock(held *runlock.Held) {
	if held == nil {
		return
	}
	if err := held.Release(); err != nil {
		jm.logger.Error("releasing run lock: " + err.Error())
	}
}

// Status returns the current run record for id.
func (jm *JobManager) Status(id uuid.UUID) (*repo.Run, error) {
	jm.mu.RLock()
	defer jm.mu.RUnlock()
	j, ok := jm.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return j.run, nil
}

// Cancel requests early termination of a running search.
func (jm *JobManager) Cancel(id uuid.UUID) error {
	jm.mu.RLock()
	j, ok := jm.jobs[id]
	jm.mu.RUnlock()
	if !ok {
		return ErrJobNotFound
	}
	if j.cancel == nil {
		return ErrNotCancellable
	}
	j.cancel()
	return nil
}
