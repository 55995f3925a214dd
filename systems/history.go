package systems

import (
	"time"

	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/storage"
	"github.com/charmbracelet/log"
)

// HistoryPath is the run history database; tests and tools may point it elsewhere.
var HistoryPath = storage.DefaultPath

// RunFromStats converts a run's counters into a history record.
func RunFromStats(stats *components.RunStatsData) storage.Run {
	tps := cfg.C.TPS
	if tps <= 0 {
		tps = 60
	}
	return storage.Run{
		ID:        stats.RunID,
		Rooms:     stats.RoomsCleared,
		Deaths:    stats.Deaths,
		Rotations: stats.Rotations,
		Duration:  time.Duration(stats.Ticks) * time.Second / time.Duration(tps),
		Completed: stats.Completed,
	}
}

// RecordRun writes a finished or abandoned run to the history and remembers
// its row in stats, so recording it again after a continue updates the same
// entry. Failures are logged; the history is optional.
func RecordRun(stats *components.RunStatsData) {
	if stats == nil || stats.Ticks == 0 {
		return
	}
	store, err := storage.Open(HistoryPath)
	if err != nil {
		log.Warn("run history unavailable", "err", err)
		return
	}
	defer store.Close()

	run := RunFromStats(stats)
	id, err := store.RecordRun(run)
	if err != nil {
		log.Warn("could not record run", "err", err)
		return
	}
	stats.RunID = id
	log.Info("run recorded", "id", id, "rooms", run.Rooms, "deaths", run.Deaths, "duration", run.Duration, "completed", run.Completed)
}

// RunSummary returns the aggregate history, or nil when it cannot be read.
func RunSummary() *storage.Summary {
	store, err := storage.Open(HistoryPath)
	if err != nil {
		log.Warn("run history unavailable", "err", err)
		return nil
	}
	defer store.Close()

	sum, err := store.Summarize()
	if err != nil {
		log.Warn("could not summarize runs", "err", err)
		return nil
	}
	return sum
}
