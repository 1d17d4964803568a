package converter

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"video-transcriber/internal/app/pipeline"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncWidth), " ✓ ",
			),
		),
	)

	return &ProgressBar{
		bar:     bar,
		enabled: true,
	}
}

func (pb *ProgressBar) Increment() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Increment()
	}
}

// Abort stops the bar where it is, leaving it on screen
func (pb *ProgressBar) Abort() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Abort(false)
	}
}

func (pb *ProgressBar) Complete() {
	if pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

func (pm *ProgressManager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func (pm *ProgressManager) Shutdown() {
	if pm.enabled && pm.container != nil {
		pm.container.Shutdown()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}

func FormatProgressDescription(action string, videoID string) string {
	if videoID != "" {
		return fmt.Sprintf("%s (%s)", action, videoID)
	}
	return action
}

// StageProgress is a pipeline.Observer that advances one bar per finished
// stage. Runs are counted in order, so it suits one run at a time.
type StageProgress struct {
	manager *ProgressManager
	label   string
	mu      sync.Mutex
	bar     *ProgressBar
	stages  int
}

// NewStageProgress creates an observer drawing on manager
func NewStageProgress(manager *ProgressManager, label string) *StageProgress {
	return &StageProgress{manager: manager, label: label}
}

// StageStarted implements pipeline.Observer. The bar is created lazily on the
// first stage of a run.
func (sp *StageProgress) StageStarted(stage pipeline.Stage) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.bar == nil {
		sp.bar = sp.manager.CreateBar(len(pipeline.Stages), FormatProgressDescription("Transcribing", sp.label))
		sp.stages = 0
	}
}

// StageFinished implements pipeline.Observer
func (sp *StageProgress) StageFinished(stage pipeline.Stage, _ time.Duration, err error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.bar == nil || err != nil {
		return
	}
	sp.bar.Increment()
	sp.stages++
}

// RunFinished implements pipeline.Observer
func (sp *StageProgress) RunFinished(_ time.Duration, err error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.bar == nil {
		return
	}
	if err != nil {
		sp.bar.Abort()
	} else {
		sp.bar.Complete()
	}
	sp.bar = nil
}

// CompletedStages reports how many stages of the current run succeeded
func (sp *StageProgress) CompletedStages() int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.stages
}
