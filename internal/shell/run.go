package shell

import (
	"context"
	"strconv"
	"strings"

	"forestsim/internal/logging"
	"forestsim/internal/store"
)

const (
	menuPrompt = "(P)rint, (A)dd, (C)ut, (G)row, (R)eap, (S)ave, (L)oad, (N)ext, e(X)it: "

	msgInvalidNumber = "Invalid input. Please enter a valid number."
	msgInvalidHeight = "Invalid height. Please enter a positive number."
	msgInvalidOption = "Invalid menu option, try again"
	msgExit          = "Exiting the Forestry Simulation"
	msgNoMore        = "No more forests to process."
)

// Run reads menu commands until X, end of input, or cancellation of ctx.
// End of input returns nil; cancellation returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	for {
		s.print("\n" + menuPrompt)
		choice, ok := s.readLine(ctx)
		if !ok {
			return s.finish(ctx)
		}

		switch strings.ToUpper(strings.TrimSpace(choice)) {
		case "P":
			if err := s.Current().Display(s.out); err != nil {
				return err
			}
		case "A":
			tree := s.Current().AddRandomTree(s.generator)
			s.logger.Debug("tree added", logging.String(logging.FieldForest, s.current), logging.String("tree", tree.String()))
		case "C":
			if !s.cut(ctx) {
				return s.finish(ctx)
			}
		case "G":
			s.Current().SimulateYearlyGrowth()
			s.logger.Debug("forest grown", logging.String(logging.FieldForest, s.current))
		case "R":
			if !s.reap(ctx) {
				return s.finish(ctx)
			}
		case "S":
			s.save(ctx)
		case "L":
			if !s.load(ctx) {
				return s.finish(ctx)
			}
		case "N":
			s.advance()
		case "X":
			s.println(msgExit)
			s.logger.Info("session ended", logging.String(logging.FieldEventType, "session_end"))
			return nil
		default:
			s.println(msgInvalidOption)
		}
	}
}

// cut prompts until a number is entered. An out-of-range number is reported
// once and the command is abandoned.
func (s *Session) cut(ctx context.Context) bool {
	for {
		s.print("Tree number to cut down: ")
		input, ok := s.readLine(ctx)
		if !ok {
			return false
		}
		index, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			s.println(msgInvalidNumber)
			continue
		}
		if err := s.Current().CutByIndex(index); err != nil {
			s.println("Tree number " + strconv.Itoa(index) + " does not exist")
			s.logger.Debug("cut rejected",
				logging.String(logging.FieldForest, s.current),
				logging.String(logging.FieldErrorKind, errorKind(err)),
				logging.Error(err),
			)
		}
		return true
	}
}

// reap prompts until a non-negative height is entered.
func (s *Session) reap(ctx context.Context) bool {
	for {
		s.print("Height to reap from: ")
		input, ok := s.readLine(ctx)
		if !ok {
			return false
		}
		threshold, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if err != nil {
			s.println(msgInvalidNumber)
			continue
		}
		// NaN fails this comparison too.
		if !(threshold >= 0) {
			s.println(msgInvalidHeight)
			continue
		}

		reaped := s.Current().Reap(threshold, s.generator)
		for _, r := range reaped {
			s.println("Reaping the tall tree  " + r.Reaped.ReapingFormat())
			s.println("Replaced with new tree " + r.Replacement.ReapingFormat())
		}
		s.logger.Info("forest reaped",
			logging.String(logging.FieldForest, s.current),
			logging.Float64("threshold", threshold),
			logging.Int("replaced", len(reaped)),
		)
		return true
	}
}

func (s *Session) save(ctx context.Context) {
	f := s.Current()
	if err := s.store.Save(ctx, f); err != nil {
		s.println("Error saving forest to file: " + err.Error())
		s.logger.Warn("save failed", logging.String(logging.FieldForest, f.Name), logging.Error(err))
		return
	}
	s.logger.Info("forest saved",
		logging.String(logging.FieldEventType, "save"),
		logging.String(logging.FieldForest, f.Name),
		logging.Int("trees", f.Len()),
	)
}

// load restores a forest by name. On failure the current forest is kept.
func (s *Session) load(ctx context.Context) bool {
	s.print("Enter forest name: ")
	name, ok := s.readLine(ctx)
	if !ok {
		return false
	}
	name = strings.TrimSpace(name)

	restored, err := s.store.Load(ctx, name)
	if err != nil {
		s.println("Error opening/reading " + store.FileName(name))
		s.println("Old forest retained")
		s.logger.Warn("load failed", logging.String(logging.FieldForest, name), logging.Error(err))
		return true
	}

	s.forests[name] = restored
	s.current = name
	s.println("Forest loaded successfully from " + store.FileName(name))
	s.logger.Info("forest loaded",
		logging.String(logging.FieldEventType, "load"),
		logging.String(logging.FieldForest, name),
		logging.Int("trees", restored.Len()),
	)
	return true
}

// advance moves to the next forest in rotation that has a CSV seed file,
// reporting and skipping those that do not.
func (s *Session) advance() {
	candidate, ok := NextName(s.current, s.names)
	if !ok {
		s.println(msgNoMore)
		return
	}

	s.println("Moving to the next forest")
	s.println("Initializing from " + candidate)
	for range s.names {
		if s.hasCSV(candidate) {
			s.current = candidate
			s.logger.Info("forest switched", logging.String(logging.FieldForest, candidate))
			return
		}
		s.println("Error opening/reading " + candidate + ".csv")
		candidate, _ = NextName(candidate, s.names)
		if s.hasCSV(candidate) {
			s.println("Initializing from " + candidate)
		}
	}
	s.println(msgNoMore)
}

func (s *Session) finish(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		s.logger.Info("session cancelled", logging.Error(err))
		return err
	}
	s.logger.Info("session ended", logging.String(logging.FieldEventType, "session_end"), logging.String("reason", "eof"))
	return nil
}

type lineResult struct {
	text string
	ok   bool
}

// readLine reads one line of input. The read runs on its own goroutine only
// so a prompt can return as soon as ctx is cancelled; nothing is read ahead,
// and the goroutine exits once its single line has been delivered.
func (s *Session) readLine(ctx context.Context) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	result := make(chan lineResult, 1)
	go func() {
		ok := s.input.Scan()
		result <- lineResult{text: s.input.Text(), ok: ok}
	}()

	select {
	case r := <-result:
		if !r.ok {
			if err := s.input.Err(); err != nil {
				s.logger.Warn("input read failed", logging.Error(err))
			}
		}
		return r.text, r.ok
	case <-ctx.Done():
		return "", false
	}
}
