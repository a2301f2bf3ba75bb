package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tumelo/reportal/internal/app/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	assert.NoError(t, err)
	return s
}

func TestStore_SessionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.LoadSession()
	assert.NoError(t, err)
	assert.False(t, ok)

	sess := Session{
		User:  models.User{ID: 7, Name: "Lineo Mahao", Role: models.RoleStudent},
		Token: "signed.jwt.token",
	}
	assert.NoError(t, s.SaveSession(sess))

	loaded, ok, err := s.LoadSession()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), loaded.User.ID)
	assert.Equal(t, "signed.jwt.token", loaded.Token)

	assert.NoError(t, s.ClearSession())
	_, ok, err = s.LoadSession()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Feedback(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Feedback(14)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.SaveFeedback(14, "Cover more examples next week"))
	assert.NoError(t, s.SaveFeedback(15, "Good pacing"))

	fb, ok, err := s.Feedback(14)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Cover more examples next week", fb)

	all, err := s.AllFeedback()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Good pacing", all[15])
}

func TestStore_Attendance(t *testing.T) {
	s := newTestStore(t)

	records, err := s.Attendance()
	assert.NoError(t, err)
	assert.Empty(t, records)

	assert.NoError(t, s.AppendAttendance(AttendanceRecord{StudentID: 7, ModuleCode: "DIWA2110", Date: "2026-03-02", Present: true}))
	assert.NoError(t, s.AppendAttendance(AttendanceRecord{StudentID: 7, ModuleCode: "DIWA2110", Date: "2026-03-09", Present: false}))

	records, err = s.Attendance()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.True(t, records[0].Present)
	assert.False(t, records[1].Present)
}

func TestStore_StudentReports(t *testing.T) {
	s := newTestStore(t)

	rep := StudentReport{
		ID:          "r-1",
		StudentID:   7,
		StudentName: "Lineo Mahao",
		ModuleCode:  "DIWA2110",
		Text:        "The projector in room B4 is broken",
		CreatedAt:   time.Now(),
	}
	assert.NoError(t, s.AppendStudentReport(rep))

	assert.NoError(t, s.SetStudentReportFeedback("r-1", "Reported to facilities"))

	reports, err := s.StudentReports()
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, "Reported to facilities", reports[0].Feedback)

	err = s.SetStudentReportFeedback("missing", "x")
	assert.Error(t, err)
}

func TestStore_StreamModules(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.StreamModules("Information Systems")
	assert.NoError(t, err)
	assert.False(t, ok)

	modules := []models.Module{{Code: "IS301", Name: "Business Analysis", Stream: "Information Systems"}}
	assert.NoError(t, s.SaveStreamModules("Information Systems", modules))

	// Lookup is case-insensitive on the stream name
	loaded, ok, err := s.StreamModules("information systems")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "IS301", loaded[0].Code)
}

func TestStore_KeysAreNamespaced(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.SaveFeedback(1, "a"))
	assert.NoError(t, s.SaveFeedback(2, "b"))
	assert.NoError(t, s.Put("session", Session{}))

	keys, err := s.Keys("feedback/")
	assert.NoError(t, err)
	assert.Len(t, keys, 2)
}
