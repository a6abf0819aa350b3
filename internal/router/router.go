package router

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-roster/internal/handler"
	"github.com/stemsi/exstem-roster/internal/response"
)

// HandlerFunc runs one command with its arguments.
type HandlerFunc func(ctx context.Context, args []string) error

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student *handler.StudentHandler
	System  *handler.SystemHandler
}

// Router maps command verbs to handlers.
type Router struct {
	routes map[string]HandlerFunc
	out    *response.Printer
	log    zerolog.Logger
}

// SetupRouter registers every command verb.
func SetupRouter(handlers *Handlers, out *response.Printer, log zerolog.Logger) *Router {
	r := &Router{
		routes: make(map[string]HandlerFunc),
		out:    out,
		log:    log.With().Str("component", "router").Logger(),
	}

	// ─── Roster ────────────────────────────────────────────────────────
	r.Handle("add", handlers.Student.Add)
	r.Handle("remove", handlers.Student.Remove)
	r.Handle("display", handlers.Student.Display)
	r.Handle("find", handlers.Student.Find)
	r.Handle("sorted", handlers.Student.Sorted)
	r.Handle("filter-spec", handlers.Student.FilterBySpecialization)
	r.Handle("filter-year", handlers.Student.FilterByMinYear)
	r.Handle("set-email", handlers.Student.SetEmail)
	r.Handle("set-spec", handlers.Student.SetSpecialization)
	r.Handle("count", handlers.Student.Count)
	r.Handle("clear", handlers.Student.Clear)

	// ─── Persistence ───────────────────────────────────────────────────
	r.Handle("save", handlers.Student.Save)
	r.Handle("load", handlers.Student.Load)

	// ─── Session ───────────────────────────────────────────────────────
	r.Handle("help", handlers.System.Help)
	r.Handle("q", handlers.System.Quit)
	r.Handle("quit", handlers.System.Quit)
	r.Handle("exit", handlers.System.Quit)

	return r
}

// Handle registers fn for verb, replacing any previous registration.
func (r *Router) Handle(verb string, fn HandlerFunc) {
	r.routes[strings.ToLower(verb)] = fn
}

// Dispatch parses one input line and runs the matching handler.
// Blank lines are ignored. It returns handler.ErrQuit when the session should end;
// any other handler error is reported and swallowed so the session continues.
func (r *Router) Dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	log := r.log.With().
		Str("command_id", uuid.New().String()).
		Str("verb", verb).
		Logger()

	fn, ok := r.routes[verb]
	if !ok {
		log.Debug().Msg("Unknown command")
		r.out.Fail(response.ErrUnknownCommand)
		return nil
	}

	log.Debug().Int("args", len(args)).Msg("Dispatching command")
	if err := fn(log.WithContext(ctx), args); err != nil {
		if errors.Is(err, handler.ErrQuit) {
			return err
		}
		log.Error().Err(err).Msg("Command failed")
		r.out.Fail(response.ErrInternal)
	}
	return nil
}
