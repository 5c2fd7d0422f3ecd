package backend

// PassManager runs textual pass pipelines (in the syntax of LLVM's `opt
// -passes=`) over a module.
type PassManager interface {
	RunPasses(m Module, pipeline string) error
}

// Optimizer builds a pass manager context, hands it to fn, and releases the
// context once fn returns regardless of whether fn succeeded.
type Optimizer interface {
	WithPassManager(fn func(pm PassManager) error) error
}

// Pass pipelines run over every flavored module.
const (
	// SpecializationCleanupPipeline re-optimizes a module after specialization
	// constants have been substituted: constants are propagated through the
	// whole module and globals left unused are removed.
	SpecializationCleanupPipeline = "ipsccp,globaldce"

	// DefaultPipeline is the standard whole-module pipeline at O3.
	DefaultPipeline = "default<O3>"
)

// optimize runs the backend pass sequence over a flavored module.
func (t *Translator) optimize(m Module) error {
	return t.optimizer.WithPassManager(func(pm PassManager) error {
		if err := pm.RunPasses(m, SpecializationCleanupPipeline); err != nil {
			return err
		}

		return pm.RunPasses(m, DefaultPipeline)
	})
}
