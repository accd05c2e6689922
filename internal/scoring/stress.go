package scoring

import (
	"image"
	"runtime"
	"sync"

	"go-qr-score/internal/decoder"
)

// StressResults holds one stress run's outcomes: a pass/fail bit per variant
// name plus the contrast measurement of the untouched image.
type StressResults struct {
	Tests         map[string]bool `json:"tests"`
	ContrastRatio float64         `json:"-"`
}

// RunStressTests measures contrast once on the untouched image, then
// evaluates the decode ensemble against every variant concurrently. Each
// variant evaluation owns its image buffer and produces one isolated boolean;
// the run always evaluates the full matrix to completion.
func RunStressTests(img image.Image, p Params) StressResults {
	contrast := MeasureContrast(img)
	specs := variantSpecs()

	type outcome struct {
		name   string
		passed bool
	}

	jobs := make(chan variantSpec, len(specs))
	results := make(chan outcome, len(specs))

	workers := runtime.NumCPU()
	if workers > len(specs) {
		workers = len(specs)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for spec := range jobs {
				results <- outcome{name: spec.name, passed: evaluateVariant(img, p, spec)}
			}
		}()
	}

	for _, s := range specs {
		jobs <- s
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	tests := make(map[string]bool, len(specs))
	for r := range results {
		tests[r.name] = r.passed
	}

	return StressResults{Tests: tests, ContrastRatio: contrast}
}

// evaluateVariant generates one variant and attempts a decode. A panic
// anywhere in the unit downgrades to a failed test for that one variant; the
// stress matrix models degradation tolerance, not infrastructure failure.
func evaluateVariant(img image.Image, p Params, spec variantSpec) (passed bool) {
	defer func() {
		if r := recover(); r != nil {
			passed = false
		}
	}()

	variant := spec.apply(img, p)
	_, err := decoder.TryDecode(variant)
	return err == nil
}
