package console

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	page  string
	id    int64
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) OpenList(ctx context.Context, page string) error {
	f.calls = append(f.calls, "list")
	f.page = page
	return nil
}
func (f *fakeExec) OpenCreate(ctx context.Context, page string) error {
	f.calls = append(f.calls, "add")
	f.page = page
	return nil
}
func (f *fakeExec) OpenEdit(ctx context.Context, page string, id int64) error {
	f.calls = append(f.calls, "edit")
	f.page, f.id = page, id
	return nil
}
func (f *fakeExec) Delete(ctx context.Context, page string, id int64) error {
	f.calls = append(f.calls, "delete")
	f.page, f.id = page, id
	return nil
}
func (f *fakeExec) Report(ctx context.Context) error {
	f.calls = append(f.calls, "report")
	return nil
}
func (f *fakeExec) Export(ctx context.Context, format string) error {
	f.calls = append(f.calls, "export")
	f.page = format
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"list departamentos",
		"add cargos",
		"edit empleados 7",
		"delete estados 3",
		"report",
		"export pdf",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, func() []string { return nil }, sc)

	wantOrder := []string{"login", "list", "add", "edit", "delete", "report", "export"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.id != 3 {
		t.Fatalf("last id = %d, want 3", exec.id)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	silencePrintln(t)

	// Missing or malformed arguments never reach the handlers.
	input := strings.NewReader(strings.Join([]string{
		"list",
		"edit departamentos",
		"edit departamentos abc",
		"delete departamentos",
		"export",
		"quit",
	}, "\n"))
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, func() []string { return nil }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_FlashLinesPrinted(t *testing.T) {
	var printed []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		if len(args) == 1 {
			if s, ok := args[0].(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	input := strings.NewReader("exit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, func() []string {
		return []string{"[success] Departamento created"}
	}, sc)

	found := false
	for _, line := range printed {
		if line == "[success] Departamento created" {
			found = true
		}
	}
	if !found {
		t.Fatalf("flash line not printed: %v", printed)
	}
}
