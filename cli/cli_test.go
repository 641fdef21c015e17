package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/msgfmt/log"
	"github.com/ardnew/msgfmt/msg"
	"github.com/ardnew/msgfmt/pkg"
)

func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", pkg.Name+"-cli-")
	if err != nil {
		panic(err)
	}

	os.Setenv("HOME", home)
	os.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	os.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))

	log.SetDefault(log.Make(io.Discard))

	code := m.Run()

	os.RemoveAll(home)
	os.Exit(code)
}

// runCLI runs the command line with args and returns its output streams.
func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	err = RunWith(t.Context(), strings.NewReader(stdin), &out, &errOut,
		func(code int) { t.Fatalf("unexpected exit(%d)", code) },
		args...,
	)

	return out.String(), errOut.String(), err
}

func TestRunWith(t *testing.T) {
	dir := t.TempDir()

	source := filepath.Join(dir, "greeting.txt")
	if err := os.WriteFile(source, []byte("Hello,   {name}!"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "en.yaml"), []byte("bye: Bye, {name}.\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name: "render",
			args: []string{"render", "-t", "Hello, {name}!", "-P", "name=World"},
			want: "Hello, World!\n",
		},
		{
			name: "render default command",
			args: []string{source, "-P", "name=Di"},
			want: "Hello,   Di!\n",
		},
		{
			name:  "render stdin",
			args:  []string{"render", "--param", "name=Ada"},
			stdin: "Hi {name}",
			want:  "Hi Ada\n",
		},
		{
			name: "render file",
			args: []string{"render", source, "-P", "name=Bo"},
			want: "Hello,   Bo!\n",
		},
		{
			name: "parse template",
			args: []string{"parse", "template", source},
			want: "Hello,   {name}!\n",
		},
		{
			name:  "parse tree",
			args:  []string{"parse", "tree"},
			stdin: "a{b}",
			want:  "Text \"a\"\nParameter b\n",
		},
		{
			name: "catalog render",
			args: []string{"catalog", "render", dir, "bye", "-l", "fr", "-P", "name=Cy"},
			want: "Bye, Cy.\n",
		},
		{
			name: "catalog list",
			args: []string{"catalog", "list", dir},
			want: "en\n  bye\n",
		},
		{
			name: "version",
			args: []string{"version"},
			want: pkg.Name + " " + strings.TrimSpace(pkg.Version) + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := runCLI(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("RunWith() error = %v\n%s", err, stderr)
			}

			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestRunWith_ParseError(t *testing.T) {
	stdout, stderr, err := runCLI(t, "", "render", "-t", "Hi {name")
	if !errors.Is(err, msg.ErrParse) {
		t.Fatalf("RunWith() error = %v, want ErrParse", err)
	}

	if stdout != "" {
		t.Errorf("stdout = %q, want none", stdout)
	}

	lines := strings.Split(strings.TrimSuffix(stderr, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("stderr = %q, want message, line and marker", stderr)
	}

	if lines[1] != "1 | Hi {name" {
		t.Errorf("snippet = %q", lines[1])
	}

	if !strings.HasSuffix(lines[2], "^") {
		t.Errorf("marker = %q", lines[2])
	}

	if !Reported(err) {
		t.Error("Reported() = false for a parse error written to stderr")
	}
}

func TestRunWith_FormatError(t *testing.T) {
	_, stderr, err := runCLI(t, "", "render", "-t", "Hi {name}")
	if !errors.Is(err, msg.ErrMissingParameter) {
		t.Fatalf("RunWith() error = %v, want ErrMissingParameter", err)
	}

	if stderr != "" {
		t.Errorf("stderr = %q, want no snippet", stderr)
	}

	if Reported(err) {
		t.Error("Reported() = true for an error not written to stderr")
	}
}

func TestRunWith_UnknownCommandFlag(t *testing.T) {
	if _, _, err := runCLI(t, "", "render", "--bogus"); err == nil {
		t.Error("RunWith() error = nil, want unknown flag error")
	}
}

func TestRunWith_Environment(t *testing.T) {
	t.Setenv("MSGFMT_TEMPLATE", "from {src}")

	stdout, _, err := runCLI(t, "", "render", "-P", "src=env")
	if err != nil {
		t.Fatalf("RunWith() error = %v", err)
	}

	if stdout != "from env\n" {
		t.Errorf("stdout = %q, want %q", stdout, "from env\n")
	}
}

func TestRunWith_ConfigFile(t *testing.T) {
	path := configPath(baseConfig + ".yaml")

	if err := mkdirAllRequired(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("template: 'from {src}'\nlocale: de\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { os.Remove(path) })

	stdout, _, err := runCLI(t, "", "render", "-P", "src=config")
	if err != nil {
		t.Fatalf("RunWith() error = %v", err)
	}

	if stdout != "from config\n" {
		t.Errorf("stdout = %q, want %q", stdout, "from config\n")
	}

	// Flags override the configuration file.
	stdout, _, err = runCLI(t, "", "render", "-t", "flag", "-P", "src=x")
	if err != nil {
		t.Fatalf("RunWith() error = %v", err)
	}

	if stdout != "flag\n" {
		t.Errorf("stdout = %q, want %q", stdout, "flag\n")
	}
}

func TestRunWith_Init(t *testing.T) {
	path := configPath(baseConfig + ".yaml")
	t.Cleanup(func() { os.Remove(path) })

	stdout, _, err := runCLI(t, "", "--log-level=debug", "init", "--force")
	if err != nil {
		t.Fatalf("RunWith() error = %v", err)
	}

	if stdout != path+"\n" {
		t.Errorf("stdout = %q, want %q", stdout, path+"\n")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if !strings.Contains(string(data), "log-level: debug\n") {
		t.Errorf("config =\n%s\nwant log-level: debug", data)
	}
}

func TestBasePrefix(t *testing.T) {
	if got := basePrefix(); got != pkg.Name {
		t.Errorf("basePrefix() = %q, want %q", got, pkg.Name)
	}

	want := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), pkg.Name, "x.yaml")
	if got := configPath("x.yaml"); got != want {
		t.Errorf("configPath() = %q, want %q", got, want)
	}
}
