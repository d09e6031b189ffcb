package analysis

import (
	"sort"

	"trp/internal/domain"
	"trp/internal/registry"
	"trp/internal/storage"
)

// Summary aggregates persisted results into pass/fail counts.
type Summary struct {
	Total    int            `json:"total"`
	Passed   int            `json:"passed"`
	Failed   int            `json:"failed"`
	PassRate float64        `json:"pass_rate"`
	ByStatus map[string]int `json:"by_status"`
}

// DetailedTestResults is the full analysis payload for one test case. When
// the case is unknown only Error is set.
type DetailedTestResults struct {
	Error      string              `json:"error,omitempty"`
	TestCase   *domain.TestCase    `json:"test_case,omitempty"`
	History    []domain.TestResult `json:"history,omitempty"`
	MostRecent *domain.TestResult  `json:"most_recent"`
}

// Analyzer aggregates persisted test results into summaries, histories and
// per-case status. Reads go through the storage manager; the registry is
// consulted only to validate test case ids for detailed analysis.
type Analyzer struct {
	storage  storage.Storage
	registry *registry.Registry
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(st storage.Storage, reg *registry.Registry) *Analyzer {
	return &Analyzer{storage: st, registry: reg}
}

// GetTestResultsSummary summarizes every persisted result, optionally
// restricted to a set of test case ids.
func (a *Analyzer) GetTestResultsSummary(testCaseIDs ...string) Summary {
	results := a.storage.GetAllTestResults()
	if len(testCaseIDs) > 0 {
		wanted := make(map[string]bool, len(testCaseIDs))
		for _, id := range testCaseIDs {
			wanted[id] = true
		}
		filtered := results[:0]
		for _, r := range results {
			if wanted[r.TestCaseID] {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}
	return summarize(results)
}

// GetModuleTestSummary summarizes the results persisted for one module.
func (a *Analyzer) GetModuleTestSummary(moduleID string) Summary {
	return summarize(a.storage.GetTestResultsByModule(moduleID))
}

// GetTestCaseHistory returns every persisted result for a test case,
// ascending by timestamp.
func (a *Analyzer) GetTestCaseHistory(testCaseID string) []domain.TestResult {
	var history []domain.TestResult
	for _, r := range a.storage.GetAllTestResults() {
		if r.TestCaseID == testCaseID {
			history = append(history, r)
		}
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].Timestamp.Before(history[j].Timestamp.Time)
	})
	return history
}

// GetTestCaseStatus returns the status of the most recent history entry, or
// pending when no result has been persisted yet.
func (a *Analyzer) GetTestCaseStatus(testCaseID string) domain.TestCaseStatus {
	history := a.GetTestCaseHistory(testCaseID)
	if len(history) == 0 {
		return domain.TestCaseStatusPending
	}
	return domain.TestCaseStatus(history[len(history)-1].Status)
}

// GetDetailedTestResults returns the test case, its full history and the
// most recent result. A case unknown to the registry yields a payload whose
// Error field is set instead.
func (a *Analyzer) GetDetailedTestResults(testCaseID string) *DetailedTestResults {
	tc := a.registry.GetTestCase(testCaseID)
	if tc == nil {
		return &DetailedTestResults{Error: "Test case not found"}
	}
	history := a.GetTestCaseHistory(testCaseID)
	var mostRecent *domain.TestResult
	if len(history) > 0 {
		mostRecent = &history[len(history)-1]
	}
	return &DetailedTestResults{
		TestCase:   tc,
		History:    history,
		MostRecent: mostRecent,
	}
}

func summarize(results []domain.TestResult) Summary {
	s := Summary{ByStatus: make(map[string]int)}
	for _, r := range results {
		s.Total++
		s.ByStatus[string(r.Status)]++
		switch r.Status {
		case domain.ResultStatusPassed:
			s.Passed++
		case domain.ResultStatusFailed:
			s.Failed++
		}
	}
	if s.Total > 0 {
		s.PassRate = float64(s.Passed) / float64(s.Total) * 100
	}
	return s
}
