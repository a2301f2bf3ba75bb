// Package store is a file-backed key/value store for device-local portal
// state. Keys are versioned ("reportal:v1:...") so a format change can
// invalidate stale entries without touching other keys. Entries are never
// synced to the API; the server has no knowledge of them.
package store

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tumelo/reportal/internal/app/models"
)

const keyPrefix = "reportal:v1:"

// Store persists JSON values under versioned keys, one file per key.
type Store struct {
	dir string
}

// New opens a store rooted at dir, creating it if needed. An empty dir
// defaults to a "reportal" directory under the user config dir.
func New(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve state directory: %w", err)
		}
		dir = filepath.Join(base, "reportal")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(keyPrefix+key)+".json")
}

// Get reads the value stored under key into out. The second return is false
// when the key has never been written.
func (s *Store) Get(key string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode key %q: %w", key, err)
	}
	return true, nil
}

// Put writes the value under key, replacing any previous value.
func (s *Store) Put(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode key %q: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys with the given prefix, e.g. "feedback/".
func (s *Store) Keys(prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list state directory: %w", err)
	}
	var keys []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".json")
		decoded, err := url.PathUnescape(name)
		if err != nil || !strings.HasPrefix(decoded, keyPrefix) {
			continue
		}
		key := strings.TrimPrefix(decoded, keyPrefix)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Session is the locally stored login session.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// AttendanceRecord is a student's self-recorded class attendance. Attendance
// marking never leaves the device.
type AttendanceRecord struct {
	StudentID  int64  `json:"student_id"`
	ModuleCode string `json:"module_code"`
	Date       string `json:"date"`
	Present    bool   `json:"present"`
}

// StudentReport is an ad hoc student-to-PRL report, kept on-device with any
// feedback the PRL attaches.
type StudentReport struct {
	ID          string    `json:"id"`
	StudentID   int64     `json:"student_id"`
	StudentName string    `json:"student_name"`
	ModuleCode  string    `json:"module_code"`
	Text        string    `json:"text"`
	Feedback    string    `json:"feedback,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	sessionKey        = "session"
	attendanceKey     = "attendance"
	studentReportsKey = "student_reports"
)

// SaveSession stores the login session.
func (s *Store) SaveSession(sess Session) error {
	return s.Put(sessionKey, sess)
}

// LoadSession returns the stored session, if any.
func (s *Store) LoadSession() (Session, bool, error) {
	var sess Session
	ok, err := s.Get(sessionKey, &sess)
	return sess, ok, err
}

// ClearSession removes the stored session.
func (s *Store) ClearSession() error {
	return s.Delete(sessionKey)
}

// SaveFeedback attaches PRL feedback to a lecture report locally. The API
// never stores or returns this text.
func (s *Store) SaveFeedback(reportID int64, feedback string) error {
	return s.Put(fmt.Sprintf("feedback/%d", reportID), feedback)
}

// Feedback returns the locally stored feedback for a report, if any.
func (s *Store) Feedback(reportID int64) (string, bool, error) {
	var fb string
	ok, err := s.Get(fmt.Sprintf("feedback/%d", reportID), &fb)
	return fb, ok, err
}

// AllFeedback returns every locally stored report feedback keyed by report ID.
func (s *Store) AllFeedback() (map[int64]string, error) {
	keys, err := s.Keys("feedback/")
	if err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(keys))
	for _, key := range keys {
		var id int64
		if _, err := fmt.Sscanf(key, "feedback/%d", &id); err != nil {
			continue
		}
		var fb string
		if ok, err := s.Get(key, &fb); err == nil && ok {
			out[id] = fb
		}
	}
	return out, nil
}

// AppendAttendance adds one attendance record.
func (s *Store) AppendAttendance(rec AttendanceRecord) error {
	records, err := s.Attendance()
	if err != nil {
		return err
	}
	return s.Put(attendanceKey, append(records, rec))
}

// Attendance returns all locally recorded attendance.
func (s *Store) Attendance() ([]AttendanceRecord, error) {
	var records []AttendanceRecord
	if _, err := s.Get(attendanceKey, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AppendStudentReport adds one ad hoc student report.
func (s *Store) AppendStudentReport(rep StudentReport) error {
	reports, err := s.StudentReports()
	if err != nil {
		return err
	}
	return s.Put(studentReportsKey, append(reports, rep))
}

// StudentReports returns all locally stored ad hoc student reports.
func (s *Store) StudentReports() ([]StudentReport, error) {
	var reports []StudentReport
	if _, err := s.Get(studentReportsKey, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// SetStudentReportFeedback attaches PRL feedback to an ad hoc student report.
func (s *Store) SetStudentReportFeedback(id, feedback string) error {
	reports, err := s.StudentReports()
	if err != nil {
		return err
	}
	for i := range reports {
		if reports[i].ID == id {
			reports[i].Feedback = feedback
			return s.Put(studentReportsKey, reports)
		}
	}
	return fmt.Errorf("student report %q not found", id)
}

// SaveStreamModules stores a locally edited copy of a stream's module list.
// Edits shadow the server catalogue on this device only.
func (s *Store) SaveStreamModules(stream string, modules []models.Module) error {
	return s.Put("modules/"+strings.ToLower(stream), modules)
}

// StreamModules returns the locally edited module list for a stream, if any.
func (s *Store) StreamModules(stream string) ([]models.Module, bool, error) {
	var modules []models.Module
	ok, err := s.Get("modules/"+strings.ToLower(stream), &modules)
	return modules, ok, err
}
