package orchestrator

import "fmt"

// Stage identifies the pipeline step a failure occurred in. Callers match on
// the stage (together with errors.Is/As on the cause) to decide how to report
// a failure.
type Stage string

const (
	StageLoadConfig        Stage = "load config"
	StageParseConfig       Stage = "parse config"
	StageValidate          Stage = "validate config"
	StageBuildTokens       Stage = "build tokens"
	StageLoadTemplate      Stage = "load template"
	StageRenderPage        Stage = "render page"
	StageWritePage         Stage = "write page"
	StageLoadManifest      Stage = "load manifest"
	StageRenderManifest    Stage = "render manifest"
	StageWriteManifest     Stage = "write manifest"
	StageCopyServiceWorker Stage = "copy service worker"
)

// StageError wraps a pipeline failure with the stage it occurred in and the
// path (input location or output artifact) it concerns. All stage failures
// are terminal: the run halts and already-written artifacts remain.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("orchestrator: %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("orchestrator: %s: %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageFailure(stage Stage, path string, err error) *StageError {
	return &StageError{Stage: stage, Path: path, Err: err}
}
