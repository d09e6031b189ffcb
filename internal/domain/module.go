package domain

import "time"

// Module is a logical grouping of related test cases with declared
// dependencies. It owns the ordered list of its test case ids, not the
// TestCase objects themselves.
type Module struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Path         string    `json:"path"`
	Dependencies []string  `json:"dependencies"`
	TestCaseIDs  []string  `json:"test_case_ids"`
	LastUpdated  time.Time `json:"last_updated"`
}
