package hooks

import (
	"time"

	"github.com/lerenn/aster/pkg/logger"
)

const timingStartKey = "timing.start"

// TimingHook reports how long each operation took.
type TimingHook struct {
	logger logger.Logger
	now    func() time.Time
}

// NewTimingHook creates a new TimingHook instance.
func NewTimingHook(logger logger.Logger) *TimingHook {
	return &TimingHook{
		logger: logger,
		now:    time.Now,
	}
}

// Name returns the hook name.
func (h *TimingHook) Name() string {
	return "timing"
}

// Priority returns the hook priority. Timing runs before other hooks so its
// measurement covers them.
func (h *TimingHook) Priority() int {
	return 10
}

// PreExecute records the start time in the context metadata.
func (h *TimingHook) PreExecute(ctx *HookContext) error {
	ctx.Metadata[timingStartKey] = h.now()
	return nil
}

// PostExecute logs the elapsed time of a successful operation.
func (h *TimingHook) PostExecute(ctx *HookContext) error {
	if elapsed, ok := h.elapsed(ctx); ok {
		h.logger.Logf("%s finished in %s", ctx.OperationName, elapsed)
	}
	return nil
}

// OnError logs the elapsed time of a failed operation.
func (h *TimingHook) OnError(ctx *HookContext) error {
	if elapsed, ok := h.elapsed(ctx); ok {
		h.logger.Logf("%s failed after %s", ctx.OperationName, elapsed)
	}
	return nil
}

func (h *TimingHook) elapsed(ctx *HookContext) (time.Duration, bool) {
	start, ok := ctx.Metadata[timingStartKey].(time.Time)
	if !ok {
		return 0, false
	}
	return h.now().Sub(start).Round(time.Millisecond), true
}
