package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-roster/internal/model"
	"github.com/stemsi/exstem-roster/internal/response"
	"github.com/stemsi/exstem-roster/internal/service"
)

// StudentHandler handles the roster commands.
type StudentHandler struct {
	studentService *service.StudentService
	out            *response.Printer
	log            zerolog.Logger
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(
	studentService *service.StudentService,
	out *response.Printer,
	log zerolog.Logger,
) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		out:            out,
		log:            log.With().Str("component", "student_handler").Logger(),
	}
}

// Add godoc
// add <name> <year> <email> <specialization>
func (h *StudentHandler) Add(_ context.Context, args []string) error {
	h.out.Success("Adding student...")

	req := model.CreateStudentRequest{
		Name:           arg(args, 0),
		Year:           arg(args, 1),
		Email:          arg(args, 2),
		Specialization: arg(args, 3),
	}

	if _, err := h.studentService.Create(req); err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			h.out.FailWithFields(response.ErrValidation, ve.Fields)
			return nil
		}
		return err
	}

	h.out.Success("Student added successfully.")
	return nil
}

// Remove godoc
// remove <email>
func (h *StudentHandler) Remove(_ context.Context, args []string) error {
	if len(args) < 1 {
		h.out.Usage(UsageRemove)
		return nil
	}

	h.out.Success("Removing student...")
	if !h.studentService.Delete(args[0]) {
		h.out.Fail(response.ErrNotFound)
		return nil
	}
	h.out.Success("Student removed successfully.")
	return nil
}

// Display godoc
// display
// Prints names in insertion order, comma separated.
func (h *StudentHandler) Display(_ context.Context, _ []string) error {
	h.out.Success("Displaying students...")

	names := h.studentService.ListNames()
	if len(names) == 0 {
		h.out.Success("No students found.")
		return nil
	}
	h.out.Success("Students in the system:")
	h.out.Success("%s", strings.Join(names, ", "))
	return nil
}

// Find godoc
// find <email>
func (h *StudentHandler) Find(_ context.Context, args []string) error {
	if len(args) < 1 {
		h.out.Usage(UsageFind)
		return nil
	}

	h.out.Success("Finding student...")
	student, ok := h.studentService.GetByEmail(args[0])
	if !ok {
		h.out.Fail(response.ErrNotFound)
		return nil
	}
	h.out.Success("%s", student)
	return nil
}

// Sorted godoc
// sorted
// Prints every student ordered by name.
func (h *StudentHandler) Sorted(_ context.Context, _ []string) error {
	h.printStudents(h.studentService.ListSorted())
	return nil
}

// FilterBySpecialization godoc
// filter-spec <specialization>
func (h *StudentHandler) FilterBySpecialization(_ context.Context, args []string) error {
	if len(args) < 1 {
		h.out.Usage(UsageFilterSpec)
		return nil
	}
	h.printStudents(h.studentService.FilterBySpecialization(args[0]))
	return nil
}

// FilterByMinYear godoc
// filter-year <minYear>
func (h *StudentHandler) FilterByMinYear(_ context.Context, args []string) error {
	if len(args) < 1 {
		h.out.Usage(UsageFilterYear)
		return nil
	}

	students, err := h.studentService.FilterByMinYear(args[0])
	if err != nil {
		if errors.Is(err, service.ErrInvalidYear) {
			h.out.FailWithFields(response.ErrValidation, map[string]string{"year": err.Error()})
			return nil
		}
		return err
	}
	h.printStudents(students)
	return nil
}

// SetEmail godoc
// set-email <email> <newEmail>
func (h *StudentHandler) SetEmail(_ context.Context, args []string) error {
	if len(args) < 2 {
		h.out.Usage(UsageSetEmail)
		return nil
	}
	if !h.studentService.UpdateEmail(args[0], args[1]) {
		h.out.Fail(response.ErrNotFound)
		return nil
	}
	h.out.Success("Email updated.")
	return nil
}

// SetSpecialization godoc
// set-spec <email> <specialization>
func (h *StudentHandler) SetSpecialization(_ context.Context, args []string) error {
	if len(args) < 2 {
		h.out.Usage(UsageSetSpec)
		return nil
	}
	if !h.studentService.UpdateSpecialization(args[0], args[1]) {
		h.out.Fail(response.ErrNotFound)
		return nil
	}
	h.out.Success("Specialization updated.")
	return nil
}

// Count godoc
// count
func (h *StudentHandler) Count(_ context.Context, _ []string) error {
	h.out.Success("%d student(s) in the system.", h.studentService.Count())
	return nil
}

// Clear godoc
// clear
func (h *StudentHandler) Clear(_ context.Context, _ []string) error {
	h.out.Success("Clearing data...")
	h.studentService.Clear()
	h.out.Success("Data cleared.")
	return nil
}

// Save godoc
// save [fileName]
func (h *StudentHandler) Save(ctx context.Context, args []string) error {
	name := h.studentService.FileName(arg(args, 0))
	h.out.Success("Saving data...")

	n, err := h.studentService.Save(ctx, name)
	if err != nil {
		h.log.Error().Err(err).Str("file", name).Msg("Failed to save roster")
		h.out.FailWithDetail(storageCode(err), err.Error())
		return nil
	}
	h.out.Success("Data saved to %s (%d student(s)).", name, n)
	return nil
}

// Load godoc
// load [fileName]
// The roster is unchanged when the file cannot be read or parsed.
func (h *StudentHandler) Load(ctx context.Context, args []string) error {
	name := h.studentService.FileName(arg(args, 0))
	h.out.Success("Loading data...")

	result, err := h.studentService.Load(ctx, name)
	if err != nil {
		h.log.Error().Err(err).Str("file", name).Msg("Failed to load roster")
		h.out.FailWithDetail(storageCode(err), err.Error())
		return nil
	}

	h.out.Success("Data loaded from %s (%d student(s)).", result.File, result.Loaded)
	if result.Skipped > 0 {
		h.out.Success("Skipped %d malformed record(s).", result.Skipped)
	}
	return nil
}

func (h *StudentHandler) printStudents(students []model.Student) {
	if len(students) == 0 {
		h.out.Success("No students found.")
		return
	}
	lines := make([]string, 0, len(students))
	for _, s := range students {
		lines = append(lines, s.String())
	}
	h.out.Lines(lines)
}

// storageCode maps a persistence error to the code shown to the user.
func storageCode(err error) response.ErrCode {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return response.ErrFileNotFound
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return response.ErrInvalidPayload
	default:
		return response.ErrIO
	}
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
