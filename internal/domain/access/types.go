package access

// ResourceResult is the verbatim outcome of a call to a secured resource.
// Any status code is a valid result; only transport faults are errors.
type ResourceResult struct {
	StatusCode int
	Body       string
}

func (r ResourceResult) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Report bundles both secured resource outcomes of one demo run.
type Report struct {
	Authorized ResourceResult
	Forbidden  ResourceResult
}

func NewReport(authorized, forbidden ResourceResult) *Report {
	return &Report{
		Authorized: authorized,
		Forbidden:  forbidden,
	}
}
