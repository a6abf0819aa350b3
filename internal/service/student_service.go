package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-roster/internal/config"
	"github.com/stemsi/exstem-roster/internal/model"
	"github.com/stemsi/exstem-roster/internal/repository"
	"github.com/stemsi/exstem-roster/internal/storage"
	"github.com/stemsi/exstem-roster/internal/validator"
)

var (
	ErrInvalidYear    = errors.New("year must be a whole number")
	ErrYearOutOfRange = errors.New("year must be at least 1")
)

// ValidationError carries field-level validation messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// LoadResult summarizes a restore from file.
type LoadResult struct {
	File    string
	Loaded  int
	Skipped int
}

// StudentService handles student business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
	store       *storage.JSONFileStore
	policy      config.RestorePolicy
	defaultFile string
	log         zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(
	studentRepo *repository.StudentRepository,
	store *storage.JSONFileStore,
	cfg *config.Config,
	log zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		store:       store,
		policy:      cfg.RestorePolicy,
		defaultFile: cfg.DefaultFile,
		log:         log.With().Str("component", "student_service").Logger(),
	}
}

// Create validates the raw add arguments and appends the student.
// Duplicate emails are accepted but logged.
func (s *StudentService) Create(req model.CreateStudentRequest) (model.Student, error) {
	if fields := validator.Struct(req); fields != nil {
		return model.Student{}, &ValidationError{Fields: fields}
	}

	year, err := ParseYear(req.Year)
	if err == nil && year < 1 {
		// A zero year is indistinguishable from an absent one once saved.
		err = ErrYearOutOfRange
	}
	if err != nil {
		return model.Student{}, &ValidationError{Fields: map[string]string{"year": err.Error()}}
	}

	if _, exists := s.studentRepo.FindByEmail(req.Email); exists {
		s.log.Warn().Str("email", req.Email).Msg("Adding student with an email already in the roster")
	}

	student := model.NewStudent(req.Name, year, req.Email, req.Specialization)
	s.studentRepo.Add(student)
	s.log.Debug().Str("email", student.Email()).Int("count", s.studentRepo.Len()).Msg("Student added")
	return student, nil
}

// GetByEmail retrieves the first student with the given email.
func (s *StudentService) GetByEmail(email string) (model.Student, bool) {
	return s.studentRepo.FindByEmail(email)
}

// Delete removes the first student with the given email and reports whether one was removed.
func (s *StudentService) Delete(email string) bool {
	removed := s.studentRepo.RemoveByEmail(email)
	s.log.Debug().Str("email", email).Bool("removed", removed).Msg("Remove student")
	return removed
}

// UpdateEmail changes a student's email.
func (s *StudentService) UpdateEmail(current, next string) bool {
	return s.studentRepo.UpdateEmail(current, next)
}

// UpdateSpecialization changes a student's specialization.
func (s *StudentService) UpdateSpecialization(email, specialization string) bool {
	return s.studentRepo.UpdateSpecialization(email, specialization)
}

// ListNames returns student names in insertion order.
func (s *StudentService) ListNames() []string {
	return s.studentRepo.Names()
}

// ListSorted returns every student sorted by name.
func (s *StudentService) ListSorted() []model.Student {
	return s.studentRepo.SortedByName()
}

// FilterBySpecialization returns matching students sorted by name.
func (s *StudentService) FilterBySpecialization(specialization string) []model.Student {
	return s.studentRepo.FilterBySpecialization(specialization)
}

// FilterByMinYear parses minYear and returns matching students sorted by name.
func (s *StudentService) FilterByMinYear(minYear string) ([]model.Student, error) {
	year, err := ParseYear(minYear)
	if err != nil {
		return nil, err
	}
	return s.studentRepo.FilterByMinYear(year), nil
}

// Count returns the number of students.
func (s *StudentService) Count() int {
	return s.studentRepo.Len()
}

// Clear empties the roster.
func (s *StudentService) Clear() {
	s.studentRepo.Clear()
	s.log.Debug().Msg("Roster cleared")
}

// FileName returns name, or the configured default file when name is empty.
func (s *StudentService) FileName(name string) string {
	if name == "" {
		return s.defaultFile
	}
	return name
}

// Save writes the current roster to a file and returns how many students were written.
func (s *StudentService) Save(ctx context.Context, name string) (int, error) {
	name = s.FileName(name)

	snapshot := s.studentRepo.Snapshot()
	records := make([]model.StudentRecord, 0, len(snapshot))
	for _, st := range snapshot {
		records = append(records, st.Record())
	}

	if err := s.store.Save(ctx, name, records); err != nil {
		return 0, fmt.Errorf("save roster: %w", err)
	}

	s.log.Info().Str("file", s.store.Path(name)).Int("count", len(records)).Msg("Roster saved")
	return len(records), nil
}

// Load replaces the roster with the contents of a file. On a read or parse
// failure the roster is left as it was. Under the strict policy records with
// missing fields are skipped and counted; under the permissive policy they are
// kept with zero values.
func (s *StudentService) Load(ctx context.Context, name string) (LoadResult, error) {
	name = s.FileName(name)
	result := LoadResult{File: name}

	records, err := s.store.Load(ctx, name)
	if err != nil {
		return result, fmt.Errorf("load roster: %w", err)
	}

	kept := records
	if s.policy == config.RestoreStrict {
		kept = make([]model.StudentRecord, 0, len(records))
		for i, rec := range records {
			if fields := validator.Struct(rec); fields != nil {
				s.log.Warn().
					Int("index", i).
					Interface("fields", fields).
					Msg("Skipping malformed student record")
				result.Skipped++
				continue
			}
			kept = append(kept, rec)
		}
	}

	s.studentRepo.Restore(kept)
	result.Loaded = len(kept)

	s.log.Info().
		Str("file", s.store.Path(name)).
		Str("policy", string(s.policy)).
		Int("loaded", result.Loaded).
		Int("skipped", result.Skipped).
		Msg("Roster loaded")
	return result, nil
}

// ParseYear converts a raw year argument to an int.
func ParseYear(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidYear
	}
	return n, nil
}
