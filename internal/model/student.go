package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Student represents a single roster entry. Email is the identity key.
// Name and year are fixed at construction; email and specialization can change.
type Student struct {
	name           string
	year           int
	email          string
	specialization string
}

// NewStudent creates a Student. No constraints are imposed on the inputs.
func NewStudent(name string, year int, email, specialization string) Student {
	return Student{
		name:           name,
		year:           year,
		email:          email,
		specialization: specialization,
	}
}

func (s Student) Name() string           { return s.name }
func (s Student) Year() int              { return s.year }
func (s Student) Email() string          { return s.email }
func (s Student) Specialization() string { return s.specialization }

// SetEmail replaces the email. Collisions with other entries are not checked.
func (s *Student) SetEmail(email string) {
	s.email = email
}

// SetSpecialization replaces the specialization.
func (s *Student) SetSpecialization(specialization string) {
	s.specialization = specialization
}

// String returns the display form used by the find and filter commands.
func (s Student) String() string {
	return fmt.Sprintf("Name: %s, Year: %d, Email: %s, Specialization: %s",
		s.name, s.year, s.email, s.specialization)
}

// Record returns the persistable form of the student.
func (s Student) Record() StudentRecord {
	return StudentRecord{
		Name:           s.name,
		Year:           Year(s.year),
		Email:          s.email,
		Specialization: s.specialization,
	}
}

// StudentFromRecord rebuilds a Student from its persisted form without re-validating it.
func StudentFromRecord(r StudentRecord) Student {
	return NewStudent(r.Name, int(r.Year), r.Email, r.Specialization)
}

// StudentRecord is the JSON shape of a student inside a roster snapshot.
type StudentRecord struct {
	Name           string `json:"name" validate:"required"`
	Year           Year   `json:"year" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
}

// Year is a study year. It encodes as a JSON number and decodes from either a
// number or a string holding a base-10 integer. Any other value decodes to zero,
// which validation treats as absent.
type Year int

// UnmarshalJSON implements json.Unmarshaler.
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*y = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			*y = 0
			return nil
		}
		*y = Year(n)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*y = 0
		return nil
	}
	v, err := n.Int64()
	if err != nil {
		// Fractional years are truncated; values outside the int32 range are not years.
		f, ferr := n.Float64()
		if ferr != nil || math.IsNaN(f) || f >= math.MaxInt32+1 || f <= math.MinInt32-1 {
			*y = 0
			return nil
		}
		v = int64(f)
	}
	*y = Year(v)
	return nil
}
