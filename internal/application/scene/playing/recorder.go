package playing

import (
	"log/slog"

	"github.com/younwookim/loppy/internal/application/replay"
	"github.com/younwookim/loppy/internal/domain/entity"
)

// recorder writes every live tick to a replay file when the scene exits.
type recorder struct {
	rec    *replay.Recorder
	path   string
	logger *slog.Logger
}

func newRecorder(path, stage string, fixedDT float64, logger *slog.Logger) *recorder {
	if path == "" {
		path = replay.GenerateFilename()
	}
	return &recorder{rec: replay.NewRecorder(stage, fixedDT), path: path, logger: logger}
}

func (r *recorder) record(s entity.InputState) {
	r.rec.Record(s)
}

func (r *recorder) save() {
	if err := r.rec.Save(r.path); err != nil {
		r.logger.Error("failed to save recording", "file", r.path, "error", err)
		return
	}
	r.logger.Info("recording saved", "file", r.path, "frames", r.rec.FrameCount())
}
