package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudent_Accessors(t *testing.T) {
	s := NewStudent("Amy", 3, "a@x.com", "CS")

	assert.Equal(t, "Amy", s.Name())
	assert.Equal(t, 3, s.Year())
	assert.Equal(t, "a@x.com", s.Email())
	assert.Equal(t, "CS", s.Specialization())
}

func TestStudent_Setters(t *testing.T) {
	s := NewStudent("Amy", 3, "a@x.com", "CS")
	s.SetEmail("amy@x.com")
	s.SetSpecialization("Math")

	assert.Equal(t, "amy@x.com", s.Email())
	assert.Equal(t, "Math", s.Specialization())
	assert.Equal(t, "Amy", s.Name())
	assert.Equal(t, 3, s.Year())
}

func TestStudent_String(t *testing.T) {
	s := NewStudent("Bob", 2, "b@x.com", "CS")
	assert.Equal(t, "Name: Bob, Year: 2, Email: b@x.com, Specialization: CS", s.String())
}

func TestStudent_RecordRoundTrip(t *testing.T) {
	s := NewStudent("Bob", 2, "b@x.com", "CS")

	rec := s.Record()
	assert.Equal(t, StudentRecord{Name: "Bob", Year: 2, Email: "b@x.com", Specialization: "CS"}, rec)
	assert.Equal(t, s, StudentFromRecord(rec))
}

func TestStudentRecord_JSONKeys(t *testing.T) {
	data, err := json.Marshal(NewStudent("Bob", 2, "b@x.com", "CS").Record())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Bob","year":2,"email":"b@x.com","specialization":"CS"}`, string(data))
}

func TestYear_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Year
	}{
		{"number", `3`, 3},
		{"numeric string", `"4"`, 4},
		{"padded string", `" 2 "`, 2},
		{"fraction truncates", `2.9`, 2},
		{"huge fraction", `1e30`, 0},
		{"huge negative fraction", `-1e30`, 0},
		{"integer beyond int64", `99999999999999999999`, 0},
		{"non-numeric string", `"third"`, 0},
		{"null", `null`, 0},
		{"bool", `true`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var y Year = 99
			require.NoError(t, json.Unmarshal([]byte(tt.in), &y))
			assert.Equal(t, tt.want, y)
		})
	}
}

func TestStudentRecord_MissingFieldsDecodeToZero(t *testing.T) {
	var rec StudentRecord
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Amy"}`), &rec))

	s := StudentFromRecord(rec)
	assert.Equal(t, "Amy", s.Name())
	assert.Zero(t, s.Year())
	assert.Empty(t, s.Email())
	assert.Empty(t, s.Specialization())
}
