package progress_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/examconsolidate/examconsolidate/progress"
)

func TestTrackerRecordsStartAndFinish(t *testing.T) {
	tr := progress.NewTracker(4)
	tr.StartGroup(0, "starting group 0")
	s := tr.Snapshot()
	require.Equal(t, 4, s.TotalGroups)
	require.Equal(t, 0, s.CurrentIndex)

	tr.FinishGroup(0, "finished group 0")
	s = tr.Snapshot()
	require.Equal(t, 0, s.CurrentIndex)
	require.Equal(t, "finished group 0", s.Message)
}

func TestTrackerPercent(t *testing.T) {
	tr := progress.NewTracker(4)
	tr.FinishGroup(2, "")
	require.Equal(t, 50, tr.Snapshot().Percent())
}

func TestTrackerZeroGroupsNeverDivides(t *testing.T) {
	tr := progress.NewTracker(0)
	require.Equal(t, 0, tr.Snapshot().Percent())
}

func TestTrackerConcurrentAccessDoesNotRace(t *testing.T) {
	tr := progress.NewTracker(100)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tr.StartGroup(i, "")
			tr.FinishGroup(i, "")
			_ = tr.Snapshot()
		}(i)
	}
	wg.Wait()
}
