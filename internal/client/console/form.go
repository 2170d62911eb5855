package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var confirm = Confirm

// option is one selectable row of a dependent entity, shown as "id: label".
type option struct {
	ID    int64
	Label string
}

// formOptions holds the dependent option lists a form needs, keyed by the
// name the form asks for them with. Lists are fetched fresh on every form
// open, never cached.
type formOptions struct {
	lists map[string][]option
}

func (o *formOptions) get(name string) []option {
	if o == nil {
		return nil
	}
	return o.lists[name]
}

// optionLoader produces one option list.
type optionLoader func(ctx context.Context) ([]option, error)

// loadOptionLists fetches every dependent list as one concurrent batch.
// The batch is all-or-nothing: a single failure fails the whole form open.
func loadOptionLists(ctx context.Context, loaders map[string]optionLoader) (*formOptions, error) {
	if len(loaders) == 0 {
		return &formOptions{}, nil
	}

	var mu sync.Mutex
	lists := make(map[string][]option, len(loaders))

	g, ctx := errgroup.WithContext(ctx)
	for name, load := range loaders {
		g.Go(func() error {
			opts, err := load(ctx)
			if err != nil {
				return fmt.Errorf("load %s options: %w", name, err)
			}
			mu.Lock()
			lists[name] = opts
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &formOptions{lists: lists}, nil
}

// formSession bundles the reader/writer pair a form prompts through. Every
// prompt shows the current value and keeps it when the user just presses
// Enter, so a failed submit can re-run the form without losing input.
type formSession struct {
	reader *bufio.Reader
	out    io.Writer
}

func (s *formSession) prompt(label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	value, err := getSimpleText(s.reader, label, s.out)
	if err != nil {
		return "", err
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

// Text reads a free-form string; empty input keeps the current value.
func (s *formSession) Text(label, current string) (string, error) {
	return s.prompt(label, current)
}

// RequiredText re-prompts until a non-empty value is entered or kept.
func (s *formSession) RequiredText(label, current string) (string, error) {
	for {
		value, err := s.prompt(label, current)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		fmt.Fprintln(s.out, "A value is required.")
	}
}

// Int reads an integer, re-prompting on anything unparsable.
func (s *formSession) Int(label string, current int) (int, error) {
	cur := ""
	if current != 0 {
		cur = strconv.Itoa(current)
	}
	for {
		value, err := s.prompt(label, cur)
		if err != nil {
			return 0, err
		}
		if value == "" {
			return current, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(s.out, "Enter a whole number.")
			continue
		}
		return n, nil
	}
}

// Decimal reads a decimal amount kept as its string form on the wire.
func (s *formSession) Decimal(label, current string) (string, error) {
	for {
		value, err := s.prompt(label, current)
		if err != nil {
			return "", err
		}
		if value == "" && current == "" {
			fmt.Fprintln(s.out, "A value is required.")
			continue
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			fmt.Fprintln(s.out, "Enter a decimal amount, e.g. 1500.00.")
			continue
		}
		return value, nil
	}
}

// Date reads a YYYY-MM-DD date.
func (s *formSession) Date(label, current string) (string, error) {
	for {
		value, err := s.prompt(label, current)
		if err != nil {
			return "", err
		}
		if value == "" && current == "" {
			fmt.Fprintln(s.out, "A value is required.")
			continue
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			fmt.Fprintln(s.out, "Enter a date as YYYY-MM-DD.")
			continue
		}
		return value, nil
	}
}

func (s *formSession) printOptions(opts []option) {
	for _, o := range opts {
		fmt.Fprintf(s.out, "  %d: %s\n", o.ID, o.Label)
	}
}

func optionByID(opts []option, id int64) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Select reads a required reference: the user picks one id from opts.
func (s *formSession) Select(label string, opts []option, current int64) (int64, error) {
	s.printOptions(opts)
	cur := ""
	if current != 0 {
		cur = strconv.FormatInt(current, 10)
	}
	for {
		value, err := s.prompt(label, cur)
		if err != nil {
			return 0, err
		}
		if value == "" {
			fmt.Fprintln(s.out, "Pick one of the listed ids.")
			continue
		}
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil || !optionByID(opts, id) {
			fmt.Fprintln(s.out, "Pick one of the listed ids.")
			continue
		}
		return id, nil
	}
}

// SelectOptional reads an optional reference. Empty input keeps the current
// value; "-" clears it.
func (s *formSession) SelectOptional(label string, opts []option, current *int64) (*int64, error) {
	s.printOptions(opts)
	cur := ""
	if current != nil {
		cur = strconv.FormatInt(*current, 10)
	}
	for {
		value, err := s.prompt(label+" (- for none)", cur)
		if err != nil {
			return nil, err
		}
		if value == "" {
			return current, nil
		}
		if value == "-" {
			return nil, nil
		}
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil || !optionByID(opts, id) {
			fmt.Fprintln(s.out, "Pick one of the listed ids, or - for none.")
			continue
		}
		return &id, nil
	}
}

// MultiSelect reads a comma-separated list of ids. Empty input keeps the
// current selection; "-" clears it.
func (s *formSession) MultiSelect(label string, opts []option, current []int64) ([]int64, error) {
	s.printOptions(opts)
	cur := make([]string, 0, len(current))
	for _, id := range current {
		cur = append(cur, strconv.FormatInt(id, 10))
	}
	for {
		value, err := s.prompt(label+" (comma-separated, - for none)", strings.Join(cur, ","))
		if err != nil {
			return nil, err
		}
		if value == "" {
			return current, nil
		}
		if value == "-" {
			return []int64{}, nil
		}

		parts := strings.Split(value, ",")
		ids := make([]int64, 0, len(parts))
		ok := true
		for _, p := range parts {
			id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil || !optionByID(opts, id) {
				ok = false
				break
			}
			ids = append(ids, id)
		}
		if !ok {
			fmt.Fprintln(s.out, "Use the listed ids, comma-separated.")
			continue
		}
		return ids, nil
	}
}
