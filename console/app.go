package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aarrwnh/arraylist/list"
)

var (
	// ErrQuit is returned by Process when the user asks to leave.
	ErrQuit = errors.New("console: quit")

	ErrUnknownCommand = errors.New("console: unknown command")
	ErrNoPath         = errors.New("console: no save path")
)

var cmdPrefix = regexp.MustCompile("^[;:]")

// App drives a single list of strings through text commands. Lines that
// start with ':' or ';' are commands, anything else is appended.
type App struct {
	mu    sync.Mutex
	items *list.List[string]

	path        string
	modified    bool
	removed     int
	wsConnected bool
	cancel      context.CancelFunc
}

func NewApp(values []string, path string, cancel context.CancelFunc) *App {
	items := list.New[string]()
	for _, v := range values {
		items.Add(v)
	}
	return &App{items: items, path: path, cancel: cancel}
}

func (s *App) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Len()
}

func (s *App) Values() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Values()
}

// Start reads commands from r until quit, EOF or ctx is done.
func (s *App) Start(ctx context.Context, r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)
	for {
		s.UpdateTitle(w)
		fmt.Fprint(w, "\n> ")

		if ctx.Err() != nil || !scanner.Scan() {
			fmt.Fprintln(w)
			if err := scanner.Err(); err != nil {
				log.Println(err)
			}
			s.Quit()
			return
		}

		start := time.Now()
		out, err := s.Process(scanner.Text())
		if errors.Is(err, ErrQuit) {
			return
		}
		if err != nil {
			fmt.Fprintf(w, "\033[31m%s\033[0m\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
		if cmd, _, _ := commandParse(scanner.Text()); cmd == ":sort" || cmd == ":find" {
			timeTrack(w, start)
		}
	}
}

func (s *App) Quit() error {
	s.mu.Lock()
	log.Printf("Removed %d items during session", s.removed)
	s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	return ErrQuit
}

func (s *App) Process(input string) (string, error) {
	input = strings.Trim(input, "\n\r")
	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	cmd, subcmd, rest := commandParse(input)
	if !cmdPrefix.MatchString(cmd) {
		return s.Add(input), nil
	}

	switch cmdPrefix.ReplaceAllString(cmd, "") {
	case "a", "add":
		return s.Add(argText(input)), nil
	case "i", "insert":
		return s.Insert(subcmd, rest)
	case "g", "get":
		return s.Get(subcmd)
	case "rm", "remove":
		return s.Remove(subcmd)
	case "r", "replace":
		return s.Replace(subcmd, rest)
	case "c", "clear":
		return s.Clear(), nil
	case "sort":
		return s.Sort(subcmd)
	case "f", "find":
		return s.Find(argText(input)), nil
	case "drop":
		return s.Drop(argText(input)), nil
	case "show", "list", "ls":
		return s.Show(), nil
	case "size":
		return s.Size(), nil
	case "s", "save":
		return s.Save(subcmd)
	case "q", "quit", "exit":
		return "", s.Quit()
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

func (s *App) Add(v string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items.Add(v)
	s.modified = true
	return fmt.Sprintf("[%d] %s", s.items.Len()-1, v)
}

func (s *App) Insert(token, v string) (string, error) {
	idx, err := parseIndex(token)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.items.Insert(idx, v); err != nil {
		return "", err
	}
	s.modified = true
	return fmt.Sprintf("[%d] %s", idx, v), nil
}

func (s *App) Get(token string) (string, error) {
	idx, err := parseIndex(token)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.items.Get(idx)
}

func (s *App) Remove(token string) (string, error) {
	idx, err := parseIndex(token)
	if err != nil {
		return "", err
	}
	return s.RemoveAt(idx)
}

func (s *App) RemoveAt(idx int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.items.Get(idx)
	if err != nil {
		return "", err
	}
	if err := s.items.Remove(idx); err != nil {
		return "", err
	}
	s.modified = true
	s.removed++
	return fmt.Sprintf("removed [%d] %s", idx, v), nil
}

func (s *App) Replace(token, v string) (string, error) {
	idx, err := parseIndex(token)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.items.Replace(idx, v); err != nil {
		return "", err
	}
	s.modified = true
	return fmt.Sprintf("[%d] %s", idx, v), nil
}

func (s *App) Clear() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.items.Len()
	s.items.Clear()
	s.removed += n
	s.modified = true
	return fmt.Sprintf("removed %d item/s", n)
}

// Comparators available to the sort command.
var comparators = map[string]list.Comparator[string]{
	"":     list.Ascending[string],
	"asc":  list.Ascending[string],
	"desc": list.Descending[string],
	"len": func(a, b string) int {
		if d := len(a) - len(b); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	},
}

func (s *App) Sort(mode string) (string, error) {
	cmp, ok := comparators[mode]
	if !ok {
		return "", fmt.Errorf("%w: sort %s", ErrUnknownCommand, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items.Sort(cmp)
	s.modified = true
	return fmt.Sprintf("sorted %d item/s", s.items.Len()), nil
}

func (s *App) Find(query string) string {
	if query == "" {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	re := wordPattern(query)
	for i, v := range s.items.Values() {
		if re.MatchString(v) {
			out = append(out, fmt.Sprintf("%4d  %s", i, highlight(re, v)))
		}
	}
	return strings.Join(out, "\n")
}

// Drop removes every item containing query.
func (s *App) Drop(query string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query == "" {
		return "removed 0 item/s"
	}

	re := wordPattern(query)
	n := s.items.Filter(re.MatchString)
	if n > 0 {
		s.modified = true
		s.removed += n
	}
	return fmt.Sprintf("removed %d item/s", n)
}

func (s *App) Show() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, s.items.Len())
	for i, v := range s.items.Values() {
		out = append(out, fmt.Sprintf("%4d  %s", i, v))
	}
	return strings.Join(out, "\n")
}

func (s *App) Size() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("size=%d cap=%d", s.items.Len(), s.items.Cap())
}

// Save writes the list to path, or to the path the app was created with.
func (s *App) Save(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if path == "" {
		path = s.path
	}
	if path == "" {
		return "", ErrNoPath
	}
	if err := SaveFile(path, s.items.Values()); err != nil {
		return "", err
	}
	s.modified = false
	s.removed = 0
	return fmt.Sprintf("done: %s", path), nil
}

func (s *App) UpdateTitle(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var a string
	if s.modified {
		a += " | +"
	}
	if s.wsConnected {
		a += " | *"
	}
	setTitle(w, fmt.Sprintf("n:%d | rem:%d%s", s.items.Len(), s.removed, a))
}

func (s *App) setConnected(v bool) {
	s.mu.Lock()
	s.wsConnected = v
	s.mu.Unlock()
}

func isQuit(cmd string) bool {
	switch cmdPrefix.ReplaceAllString(cmd, "") {
	case "q", "quit", "exit":
		return cmdPrefix.MatchString(cmd)
	}
	return false
}

// argText returns everything after the command word.
func argText(input string) string {
	_, after, _ := strings.Cut(strings.TrimSpace(input), " ")
	return strings.TrimSpace(after)
}

func parseIndex(token string) (int, error) {
	idx, err := strconv.ParseInt(token, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("console: bad index %q: %w", token, err)
	}
	return int(idx), nil
}
