package repository

import (
	"slices"
	"sort"
	"sync"

	"github.com/stemsi/exstem-roster/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StudentRepository is the in-memory ordered student collection.
// Entries keep insertion order; sorted and filtered results are fresh copies.
type StudentRepository struct {
	mu       sync.Mutex
	students []model.Student
	collator *collate.Collator
}

// NewStudentRepository creates an empty repository that orders names using
// the collation rules of the given locale.
func NewStudentRepository(locale language.Tag) *StudentRepository {
	return &StudentRepository{
		collator: collate.New(locale),
	}
}

// Add appends a student to the end of the collection. Duplicate emails are accepted.
func (r *StudentRepository) Add(s model.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = append(r.students, s)
}

// RemoveByEmail removes the first student whose email matches exactly.
// It reports whether a student was removed.
func (r *StudentRepository) RemoveByEmail(email string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(email)
	if i < 0 {
		return false
	}
	r.students = slices.Delete(r.students, i, i+1)
	return true
}

// FindByEmail returns the first student whose email matches exactly.
func (r *StudentRepository) FindByEmail(email string) (model.Student, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(email)
	if i < 0 {
		return model.Student{}, false
	}
	return r.students[i], true
}

// UpdateEmail changes the email of the first student matching current.
func (r *StudentRepository) UpdateEmail(current, next string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(current)
	if i < 0 {
		return false
	}
	r.students[i].SetEmail(next)
	return true
}

// UpdateSpecialization changes the specialization of the first student matching email.
func (r *StudentRepository) UpdateSpecialization(email, specialization string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(email)
	if i < 0 {
		return false
	}
	r.students[i].SetSpecialization(specialization)
	return true
}

// Names returns student names in insertion order.
func (r *StudentRepository) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.students))
	for _, s := range r.students {
		names = append(names, s.Name())
	}
	return names
}

// SortedByName returns a copy of the collection sorted by name.
// Students with equal names keep their insertion order.
func (r *StudentRepository) SortedByName() []model.Student {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedLocked()
}

// FilterBySpecialization returns the students with the given specialization, sorted by name.
func (r *StudentRepository) FilterBySpecialization(specialization string) []model.Student {
	return r.filterSorted(func(s model.Student) bool {
		return s.Specialization() == specialization
	})
}

// FilterByMinYear returns the students whose year is at least minYear, sorted by name.
func (r *StudentRepository) FilterByMinYear(minYear int) []model.Student {
	return r.filterSorted(func(s model.Student) bool {
		return s.Year() >= minYear
	})
}

// Clear removes every student.
func (r *StudentRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = nil
}

// Len returns the number of students.
func (r *StudentRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.students)
}

// Snapshot returns a copy of the collection in insertion order.
func (r *StudentRepository) Snapshot() []model.Student {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Student, len(r.students))
	copy(out, r.students)
	return out
}

// Restore replaces the whole collection with the given records, in order.
func (r *StudentRepository) Restore(records []model.StudentRecord) {
	students := make([]model.Student, 0, len(records))
	for _, rec := range records {
		students = append(students, model.StudentFromRecord(rec))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = students
}

func (r *StudentRepository) indexOf(email string) int {
	return slices.IndexFunc(r.students, func(s model.Student) bool {
		return s.Email() == email
	})
}

func (r *StudentRepository) filterSorted(keep func(model.Student) bool) []model.Student {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.Student
	for _, s := range r.sortedLocked() {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// sortedLocked must be called with mu held; the collator is not safe for concurrent use.
func (r *StudentRepository) sortedLocked() []model.Student {
	out := make([]model.Student, len(r.students))
	copy(out, r.students)
	sort.SliceStable(out, func(i, j int) bool {
		return r.collator.CompareString(out[i].Name(), out[j].Name()) < 0
	})
	return out
}
