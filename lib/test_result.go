package lib

// SuiteResult is the outcome of one suite run.
type SuiteResult struct {
	Name    string
	Total   int
	Ran     int
	Passed  bool
	Failure *Failure
}

// Skipped returns the number of tests never called because an earlier test
// failed.
func (s SuiteResult) Skipped() int {
	return s.Total - s.Ran
}
