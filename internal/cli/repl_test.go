package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/imob/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Whoami(ctx context.Context) error { return f.record("whoami", nil) }
func (f *fakeExec) List(ctx context.Context, args []string) error {
	return f.record("list", args)
}
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	return f.record("show", args)
}
func (f *fakeExec) Mine(ctx context.Context) error { return f.record("mine", nil) }
func (f *fakeExec) Add(ctx context.Context) error  { return f.record("add", nil) }
func (f *fakeExec) Edit(ctx context.Context, args []string) error {
	return f.record("edit", args)
}
func (f *fakeExec) Import(ctx context.Context, args []string) error {
	return f.record("import", args)
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	return f.record("delete", args)
}
func (f *fakeExec) Describe(ctx context.Context, args []string) error {
	return f.record("describe", args)
}

func runScript(t *testing.T, exec execIface, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, reader, &out, false, logging.Discard())
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}

	out := runScript(t, exec,
		"help",
		"login ana@x.com",
		"help",
		"list q=casa city=Campinas",
		"show 1",
		"",
		"mine",
		"add",
		"edit 2",
		"import draft.json 2",
		"delete 3",
		"describe",
		"whoami",
		"logout",
		"foobar",
		"exit",
		"list",
	)

	assert.Equal(t, []string{"login", "list", "show", "mine", "add", "edit", "import", "delete", "describe", "whoami", "logout"}, exec.calls)
	assert.Equal(t, []string{"ana@x.com"}, exec.args[0])
	assert.Equal(t, []string{"q=casa", "city=Campinas"}, exec.args[1])
	assert.Equal(t, []string{"draft.json", "2"}, exec.args[6])

	assert.Contains(t, out, helpGuest)
	assert.Contains(t, out, helpMember)
	assert.Contains(t, out, "Unknown command: foobar")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"), "nothing runs after exit")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	exec := &fakeExec{err: errors.New("boom")}

	out := runScript(t, exec, "list", "mine")

	assert.Equal(t, []string{"list", "mine"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out, "Error: boom"))
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	exec := &fakeExec{}

	runScript(t, exec, "whoami")

	require.Equal(t, []string{"whoami"}, exec.calls)
}

func TestRunREPL_Prompt(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("exit\n"))
	runREPL(context.Background(), &fakeExec{}, func() string { return "(ana@x.com)" }, reader, &out, true, logging.Discard())

	assert.True(t, strings.HasPrefix(out.String(), "imob (ana@x.com)> "))
}
