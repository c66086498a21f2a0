package catalog

// Report collects the outcome of running a catalog.
type Report struct {
	Passed map[string]int
	Failed map[string]Mismatch
	Errors map[string]error
}

// Mismatch pairs what an entry was expected to evaluate to with what it
// actually evaluated to.
type Mismatch struct {
	Expected int
	Actual   int
}

// RecordResult records a pass when the actual result matches the expected
// one and a failure otherwise.
func (r *Report) RecordResult(name string, expected, actual int) {
	if expected == actual {
		r.recordPass(name, actual)
	} else {
		r.recordFailure(name, expected, actual)
	}
}

func (r *Report) recordPass(name string, result int) {
	if r.Passed == nil {
		r.Passed = make(map[string]int)
	}
	r.Passed[name] = result
}

func (r *Report) recordFailure(name string, expected, actual int) {
	if r.Failed == nil {
		r.Failed = make(map[string]Mismatch)
	}
	r.Failed[name] = Mismatch{Expected: expected, Actual: actual}
}

// RecordError records that an entry failed to parse or evaluate at all.
func (r *Report) RecordError(name string, err error) {
	if r.Errors == nil {
		r.Errors = make(map[string]error)
	}
	r.Errors[name] = err
}

// HasFailures reports whether any entry mismatched or errored.
func (r *Report) HasFailures() bool {
	return len(r.Failed) > 0 || len(r.Errors) > 0
}

// Len is the total number of entries recorded.
func (r *Report) Len() int {
	return len(r.Passed) + len(r.Failed) + len(r.Errors)
}
