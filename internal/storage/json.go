package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"trp/internal/config"
	"trp/internal/domain"
	"trp/internal/logging"
)

// FileStorage stores one JSON document per record under the configured
// storage directory, named <id>.json. TestResult and ErrorMessage documents
// share the directory and extension. The directory is resolved through the
// config on every operation so flag overrides take effect.
type FileStorage struct {
	cfg *config.Config
	log *logging.Logger
}

// NewFileStorage returns a Storage rooted at the config's storage path.
func NewFileStorage(cfg *config.Config, log *logging.Logger) *FileStorage {
	return &FileStorage{cfg: cfg, log: log}
}

func (s *FileStorage) dir() string {
	return s.cfg.GetStoragePath()
}

// resultDocument is the on-disk envelope for a TestResult.
type resultDocument struct {
	domain.TestResult
	Kind     string `json:"kind"`
	StoredAt string `json:"stored_at"`
}

// errorDocument is the on-disk envelope for an ErrorMessage.
type errorDocument struct {
	domain.ErrorMessage
	Kind     string `json:"kind"`
	StoredAt string `json:"stored_at"`
}

// probe is the minimal view used to classify a document during scans.
type probe struct {
	Kind       string  `json:"kind"`
	TestCaseID *string `json:"test_case_id"`
}

// StoreTestResult persists a result as <dir>/<id>.json with a stored_at
// stamp. Returns false on any failure; never panics or errors out.
func (s *FileStorage) StoreTestResult(result *domain.TestResult) bool {
	doc := resultDocument{
		TestResult: *result,
		Kind:       KindTestResult,
		StoredAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.writeDocument(result.ID, doc); err != nil {
		s.log.Error("store test result failed", "id", result.ID, "error", err)
		return false
	}
	return true
}

// StoreErrorMessage mirrors StoreTestResult for ErrorMessage records.
func (s *FileStorage) StoreErrorMessage(msg *domain.ErrorMessage) bool {
	doc := errorDocument{
		ErrorMessage: *msg,
		Kind:         KindErrorMessage,
		StoredAt:     time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.writeDocument(msg.ID, doc); err != nil {
		s.log.Error("store error message failed", "id", msg.ID, "error", err)
		return false
	}
	return true
}

// writeDocument marshals v and writes it to a temp file in the storage
// directory, then renames it into place so readers never observe a partial
// write.
func (s *FileStorage) writeDocument(id string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := os.MkdirAll(s.dir(), 0755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir(), id+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	final := filepath.Join(s.dir(), id+".json")
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename record into place: %w", err)
	}
	return nil
}

// LoadTestResult returns the stored result or nil when the file is missing
// or its content is not a test result document.
func (s *FileStorage) LoadTestResult(id string) *domain.TestResult {
	data, err := os.ReadFile(filepath.Join(s.dir(), id+".json"))
	if err != nil {
		return nil
	}
	result, ok := decodeResult(data)
	if !ok {
		s.log.Debug("skipping malformed result document", "id", id)
		return nil
	}
	return result
}

// LoadErrorMessage returns the stored error message or nil.
func (s *FileStorage) LoadErrorMessage(id string) *domain.ErrorMessage {
	data, err := os.ReadFile(filepath.Join(s.dir(), id+".json"))
	if err != nil {
		return nil
	}
	msg, ok := decodeError(data)
	if !ok {
		return nil
	}
	return msg
}

// GetAllTestResults scans the storage directory and returns every document
// classified as a test result. Malformed or unrelated files are skipped
// silently.
func (s *FileStorage) GetAllTestResults() []domain.TestResult {
	var results []domain.TestResult
	s.scan(func(data []byte) {
		if r, ok := decodeResult(data); ok {
			results = append(results, *r)
		}
	})
	return results
}

// GetTestResultsByModule filters the full scan down to one module id.
func (s *FileStorage) GetTestResultsByModule(moduleID string) []domain.TestResult {
	var results []domain.TestResult
	for _, r := range s.GetAllTestResults() {
		if r.ModuleID == moduleID {
			results = append(results, r)
		}
	}
	return results
}

// GetErrorMessagesByResult returns every stored error message attached to
// the given test result, oldest first.
func (s *FileStorage) GetErrorMessagesByResult(testResultID string) []domain.ErrorMessage {
	var msgs []domain.ErrorMessage
	s.scan(func(data []byte) {
		if m, ok := decodeError(data); ok && m.TestResultID == testResultID {
			msgs = append(msgs, *m)
		}
	})
	sort.Slice(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs
}

// scan reads every .json file in the storage directory and hands its raw
// content to fn. Unreadable files are skipped.
func (s *FileStorage) scan(fn func(data []byte)) {
	entries, err := os.ReadDir(s.dir())
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir(), entry.Name()))
		if err != nil {
			continue
		}
		fn(data)
	}
}

// decodeResult classifies and decodes a raw document as a TestResult.
// Classification prefers the explicit kind tag; documents without one are
// treated as results when they carry a test_case_id field.
func decodeResult(data []byte) (*domain.TestResult, bool) {
	var p probe
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	switch p.Kind {
	case KindTestResult:
	case "":
		if p.TestCaseID == nil {
			return nil, false
		}
	default:
		return nil, false
	}
	var doc resultDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	return &doc.TestResult, true
}

// decodeError classifies and decodes a raw document as an ErrorMessage.
// Untagged documents qualify when they lack a test_case_id but carry a
// test_result_id.
func decodeError(data []byte) (*domain.ErrorMessage, bool) {
	var p probe
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	switch p.Kind {
	case KindErrorMessage:
	case "":
		if p.TestCaseID != nil {
			return nil, false
		}
	default:
		return nil, false
	}
	var doc errorDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	if doc.TestResultID == "" {
		return nil, false
	}
	return &doc.ErrorMessage, true
}
