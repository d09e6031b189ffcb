package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ID prefixes for each entity kind.
const (
	TestCaseIDPrefix     = "tc"
	ModuleIDPrefix       = "mod"
	TestResultIDPrefix   = "tr"
	ErrorMessageIDPrefix = "em"
)

// NewID generates a globally unique id with a semantic prefix,
// e.g. "tc_9f1b2c3d4e5f". Safe under rapid repeated calls.
func NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + suffix
}
