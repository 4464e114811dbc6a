package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"forestsim/internal/forest"
	"forestsim/internal/logging"
)

// Persister saves and restores whole forests.
type Persister interface {
	Save(ctx context.Context, f *forest.Forest) error
	Load(ctx context.Context, name string) (*forest.Forest, error)
}

// Options configures a Session.
type Options struct {
	// Names lists the forests in rotation order. Duplicates after the first
	// occurrence are ignored.
	Names []string
	// CSVDir holds the <name>.csv seed files.
	CSVDir    string
	Generator *forest.Generator
	Store     Persister
	In        io.Reader
	Out       io.Writer
	Logger    *slog.Logger
	// SessionID tags log records; a random one is assigned when empty.
	SessionID string
}

// Session is one interactive run over a set of named forests.
type Session struct {
	names   []string
	forests map[string]*forest.Forest
	current string

	csvDir    string
	generator *forest.Generator
	store     Persister
	input     *bufio.Scanner
	out       io.Writer
	logger    *slog.Logger
	sessionID string
}

// NewSession builds the forest table, seeding each forest from its CSV file
// when one exists. Ingestion problems are printed and skipped. The first name
// becomes the current forest.
func NewSession(opts Options) (*Session, error) {
	if opts.Store == nil {
		return nil, errors.New("shell requires a store")
	}
	if opts.Generator == nil {
		opts.Generator = forest.NewGenerator(forest.DefaultRanges())
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}

	logger := logging.NewComponentLogger(opts.Logger, "shell").
		With(logging.String(logging.FieldSessionID, opts.SessionID))

	s := &Session{
		forests:   make(map[string]*forest.Forest, len(opts.Names)),
		csvDir:    opts.CSVDir,
		generator: opts.Generator,
		store:     opts.Store,
		input:     newLineScanner(opts.In),
		out:       opts.Out,
		logger:    logger,
		sessionID: opts.SessionID,
	}

	for _, name := range opts.Names {
		if _, ok := s.forests[name]; ok {
			continue
		}
		s.names = append(s.names, name)
		s.forests[name] = s.seed(name)
	}
	if len(s.names) == 0 {
		return nil, errors.New("no forest names provided")
	}
	s.current = s.names[0]

	s.logger.Info("session started",
		logging.String(logging.FieldEventType, "session_start"),
		logging.Int("forests", len(s.names)),
	)
	return s, nil
}

// SessionID returns the identifier attached to this session's log records.
func (s *Session) SessionID() string {
	return s.sessionID
}

// Current returns the active forest.
func (s *Session) Current() *forest.Forest {
	return s.forests[s.current]
}

// CurrentName returns the table key of the active forest.
func (s *Session) CurrentName() string {
	return s.current
}

// Forest returns the table entry for name.
func (s *Session) Forest(name string) (*forest.Forest, bool) {
	f, ok := s.forests[name]
	return f, ok
}

// Names returns the rotation order used by Next.
func (s *Session) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *Session) csvPath(name string) string {
	return filepath.Join(s.csvDir, name+".csv")
}

func (s *Session) hasCSV(name string) bool {
	info, err := os.Stat(s.csvPath(name))
	return err == nil && !info.IsDir()
}

func (s *Session) seed(name string) *forest.Forest {
	f := forest.New(name)
	path := s.csvPath(name)
	logger := s.logger.With(logging.String(logging.FieldForest, name))

	result, err := f.LoadCSV(path)
	switch {
	case errors.Is(err, forest.ErrSourceNotFound):
		logger.Debug("no csv seed", logging.String("path", path))
		return f
	case err != nil:
		s.println("Error reading CSV file: " + filepath.Base(path))
		logger.Warn("csv read failed", logging.Error(err))
	}

	for _, problem := range result.Problems {
		s.println("Invalid data format in CSV file: " + problem.Text)
		logger.Warn("csv line skipped",
			logging.Int("line", problem.Line),
			logging.String(logging.FieldErrorKind, errorKind(problem)),
			logging.Error(problem.Err),
		)
	}
	logger.Info("forest seeded",
		logging.String(logging.FieldEventType, "csv_ingest"),
		logging.Int("trees", result.Added),
		logging.Int("skipped", len(result.Problems)),
	)
	return f
}

// maxInputLine bounds a single line of menu input.
const maxInputLine = 1 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxInputLine)
	return scanner
}

// errorKind returns the kind declared by the first error in err's chain that
// implements forest.ErrorClassifier, or "unknown".
func errorKind(err error) string {
	var classifier forest.ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	return "unknown"
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}
