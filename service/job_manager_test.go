package service

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vinom-labs/repmaze/infrastruture/repo"
	"github.com/vinom-labs/repmaze/quizmaster"
)

type fakeRunRepo struct {
	mu   sync.Mutex
	runs map[uuid.UUID]*repo.Run
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{runs: make(map[uuid.UUID]*repo.Run)}
}

func (f *fakeRunRepo) Save(run *repo.Run) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *run
	f.runs[run.ID] = &cp
	return nil
}

func (f *fakeRunRepo) ByID(id uuid.UUID) (*repo.Run, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return run, nil
}

type fakeLogger struct{}

func (fakeLogger) Info(string)  {}
func (fakeLogger) Error(string) {}

func waitForStatus(t *testing.T, jm *JobManager, id uuid.UUID, want repo.RunStatus) *repo.Run {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		run, err := jm.Status(id)
		assert.NoError(t, err)
		if run.Status == want {
			return run
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("job %s never reached status %s", id, want)
	return nil
}

func TestLaunchExhaustiveCompletesAndRecordsBest(t *testing.T) {
	jm := NewJobManager(newFakeRunRepo(), nil, fakeLogger{})
	id, err := jm.LaunchExhaustive(uuid.New(), quizmaster.ExhaustiveOptions{NTerm: 2, KMin: 0, KMax: 2})
	assert.NoError(t, err)

	run := waitForStatus(t, jm, id, repo.RunCompleted)
	assert.GreaterOrEqual(t, run.BestLength, 1)
}

func TestLaunchTopDownCancelMarksRunCancelled(t *testing.T) {
	jm := NewJobManager(newFakeRunRepo(), nil, fakeLogger{})
	id, err := jm.LaunchTopDown(uuid.New(), quizmaster.TopDownOptions{NTerm: 3})
	assert.NoError(t, err)

	assert.NoError(t, jm.Cancel(id))
	waitForStatus(t, jm, id, repo.RunCancelled)
}

func TestCancelUnknownJobReturnsErrJobNotFound(t *testing.T) {
	jm := NewJobManager(newFakeRunRepo(), nil, fakeLogger{})
	err := jm.Cancel(uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestCancelExhaustiveJobReturnsErrNotCancellable(t *testing.T) {
	jm := NewJobManager(newFakeRunRepo(), nil, fakeLogger{})
	id, err := jm.LaunchExhaustive(uuid.New(), quizmaster.ExhaustiveOptions{NTerm: 2, KMin: 0, KMax: 0})
	assert.NoError(t, err)

	err = jm.Cancel(id)
	assert.ErrorIs(t, err, ErrNotCancellable)
	waitForStatus(t, jm, id, repo.RunFruitless)
}
