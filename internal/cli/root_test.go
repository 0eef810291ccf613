package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capturePrintln swaps the output seam for a collector, restored on
// cleanup. Other test files in this package share it.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func joined(lines *[]string) string {
	return strings.Join(*lines, "\n")
}

type stubExec struct {
	logged bool
	calls  []string
}

func (s *stubExec) isLoggedIn() bool { return s.logged }

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) Login(ctx context.Context) error    { return s.record("login") }
func (s *stubExec) Register(ctx context.Context) error { return s.record("register") }
func (s *stubExec) WhoAmI(ctx context.Context) error   { return s.record("whoami") }
func (s *stubExec) Motos(ctx context.Context) error    { return s.record("motos") }
func (s *stubExec) Resumo(ctx context.Context) error   { return s.record("resumo") }
func (s *stubExec) SignOut(ctx context.Context) error  { return s.record("logout") }
func (s *stubExec) Reset(ctx context.Context) error    { return s.record("reset") }

func runScript(t *testing.T, stub *stubExec, script string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "" }, scanner)
}

func TestREPLDispatch(t *testing.T) {
	lines := capturePrintln(t)
	stub := &stubExec{}

	runScript(t, stub, "login\nregister\nwhoami\nmotos\nresumo\nlogout\nreset\nsair\n")

	assert.Equal(t, []string{"login", "register", "whoami", "motos", "resumo", "logout", "reset"}, stub.calls)
	assert.Contains(t, joined(lines), "Até logo!")
}

func TestREPLExitsOnEOF(t *testing.T) {
	capturePrintln(t)
	stub := &stubExec{}

	runScript(t, stub, "whoami\n")

	assert.Equal(t, []string{"whoami"}, stub.calls)
}

func TestREPLHelpDependsOnSession(t *testing.T) {
	lines := capturePrintln(t)

	runScript(t, &stubExec{logged: false}, "help\nsair\n")
	assert.Contains(t, joined(lines), "login, register")

	*lines = nil
	runScript(t, &stubExec{logged: true}, "help\nsair\n")
	assert.Contains(t, joined(lines), "whoami, motos, resumo")
}

func TestREPLUnknownCommand(t *testing.T) {
	lines := capturePrintln(t)
	stub := &stubExec{}

	runScript(t, stub, "voar\nsair\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, joined(lines), "Comando desconhecido: voar")
}

func TestREPLSkipsBlankLines(t *testing.T) {
	capturePrintln(t)
	stub := &stubExec{}

	runScript(t, stub, "\n   \nwhoami\nexit\n")

	assert.Equal(t, []string{"whoami"}, stub.calls)
}
