package lltext

import (
	"strings"

	"github.com/0dminnimda/OpenSYCL/backend"
	"github.com/0dminnimda/OpenSYCL/report"
	"github.com/cockroachdb/errors"
)

// Optimizer is the optimizer used for textual modules.  No pass algorithms are
// implemented in pure Go, so pipelines are validated and then skipped.
type Optimizer struct{}

// passManager records the pipelines requested of it while it is live.
type passManager struct {
	pipelines []string
	released  bool
}

func (Optimizer) WithPassManager(fn func(pm backend.PassManager) error) error {
	pm := &passManager{}
	defer pm.release()

	return fn(pm)
}

func (pm *passManager) release() {
	pm.pipelines = nil
	pm.released = true
}

func (pm *passManager) RunPasses(m backend.Module, pipeline string) error {
	if pm.released {
		return errors.New("pass manager used after release")
	}

	if _, ok := m.(*Module); !ok {
		return errors.Newf("cannot run passes over module of type %T", m)
	}

	if strings.TrimSpace(pipeline) == "" {
		return errors.New("empty pass pipeline")
	}

	pm.pipelines = append(pm.pipelines, pipeline)
	report.ReportVerbose("pass pipeline `%s` skipped for textual module", pipeline)
	return nil
}
