package handler

import (
	"context"
	"errors"

	"github.com/stemsi/exstem-roster/internal/response"
)

// ErrQuit is returned by the quit command to end the session.
var ErrQuit = errors.New("quit requested")

const (
	UsageAdd        = "add <name> <year> <email> <specialization>"
	UsageRemove     = "remove <email>"
	UsageFind       = "find <email>"
	UsageFilterSpec = "filter-spec <specialization>"
	UsageFilterYear = "filter-year <minYear>"
	UsageSetEmail   = "set-email <email> <newEmail>"
	UsageSetSpec    = "set-spec <email> <specialization>"
	UsageSave       = "save [fileName]"
	UsageLoad       = "load [fileName]"
)

// HelpText is the command list printed on start and by the help command.
const HelpText = `Available Commands:
  - ` + UsageAdd + `: Add a student
  - ` + UsageRemove + `: Remove a student by email
  - display: Show all students
  - ` + UsageFind + `: Find a student by email
  - sorted: Show all students sorted by name
  - ` + UsageFilterSpec + `: Show students with a specialization
  - ` + UsageFilterYear + `: Show students in at least the given year
  - ` + UsageSetEmail + `: Change a student's email
  - ` + UsageSetSpec + `: Change a student's specialization
  - count: Show the number of students
  - ` + UsageSave + `: Save the roster to a file
  - ` + UsageLoad + `: Load the roster from a file
  - clear: Clear the roster
  - help: Show this list
  - q: Quit`

// SystemHandler handles session-level commands.
type SystemHandler struct {
	out *response.Printer
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(out *response.Printer) *SystemHandler {
	return &SystemHandler{out: out}
}

// Help prints the command list.
func (h *SystemHandler) Help(_ context.Context, _ []string) error {
	h.out.Success("%s", HelpText)
	return nil
}

// Quit ends the session.
func (h *SystemHandler) Quit(_ context.Context, _ []string) error {
	h.out.Success("Exiting...")
	return ErrQuit
}
