package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milsabores/internal/app"
)

// run executes the CLI with a private home and returns stdout.
func run(t *testing.T, home string, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{app.EnvHome, app.EnvUsersFile, app.EnvPrefs, app.EnvLogLevel, app.EnvLogJSON} {
		t.Setenv(k, "")
	}

	root, e := newRootCmd()
	defer e.close()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--home", home, "--log-level", "error"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestRegisterLoginLogout(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "", "register",
		"--nombre", "Ana", "--apellido", "Soto", "--email", "ana@example.com", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered ana@example.com (id 2)")

	out, err = run(t, home, "", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com\n", out)

	_, err = run(t, home, "", "logout")
	require.NoError(t, err)

	out, err = run(t, home, "", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "not logged in\n", out)

	// Password read from stdin when not given by flag.
	out, err = run(t, home, "pw\n", "login", "--email", "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Logged in as ana@example.com\n", out)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "", "register", "--email", "admin@milsabores.cl", "--password", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLogin_WrongPassword(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "", "login", "--email", "admin@milsabores.cl", "--password", "nope")
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())

	out, err := run(t, home, "", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "not logged in\n", out)
}

func TestCart(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "", "cart", "add", "TC001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")

	_, err = run(t, home, "", "login", "--email", "admin@milsabores.cl", "--password", "admin123")
	require.NoError(t, err)

	_, err = run(t, home, "", "cart", "add", "TC001")
	require.NoError(t, err)
	out, err := run(t, home, "", "cart", "add", "TC001")
	require.NoError(t, err)
	assert.Contains(t, out, "$90.000")

	_, err = run(t, home, "", "cart", "add", "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such product")

	out, err = run(t, home, "", "cart", "remove", "TC001")
	require.NoError(t, err)
	assert.Contains(t, out, "$45.000")

	_, err = run(t, home, "", "cart", "clear")
	require.NoError(t, err)
	out, err = run(t, home, "", "cart")
	require.NoError(t, err)
	assert.Equal(t, "Cart is empty\n", out)
}

func TestPhoto(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "", "login", "--email", "admin@milsabores.cl", "--password", "admin123")
	require.NoError(t, err)

	out, err := run(t, home, "", "photo", "show")
	require.NoError(t, err)
	assert.Equal(t, "no photo\n", out)

	_, err = run(t, home, "", "photo", "set", "content://media/42")
	require.NoError(t, err)
	out, err = run(t, home, "", "photo", "show")
	require.NoError(t, err)
	assert.Equal(t, "content://media/42\n", out)

	out, err = run(t, home, "", "photo", "import")
	require.NoError(t, err)
	assert.Equal(t, "Photo unchanged\n", out)

	img := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, os.WriteFile(img, []byte("png"), 0o600))
	out, err = run(t, home, "", "photo", "import", img)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "file://"), out)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), ".png"), out)

	out, err = run(t, home, "", "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "Correo: admin@milsabores.cl")
	assert.Contains(t, out, "Rol:    admin")
	assert.Contains(t, out, "Foto:   file://")
}

func TestSQLitePrefs(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "", "--prefs", "sqlite",
		"login", "--email", "admin@milsabores.cl", "--password", "admin123")
	require.NoError(t, err)

	out, err := run(t, home, "", "--prefs", "sqlite", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "admin@milsabores.cl\n", out)

	// The JSON backend keeps its own session.
	out, err = run(t, home, "", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "not logged in\n", out)
}

func TestCatalogAndAbout(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "", "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "TC001")
	assert.Contains(t, out, "$45.000")

	out, err = run(t, home, "", "about")
	require.NoError(t, err)
	assert.Contains(t, out, "Nuestra Misión")
}

func TestFormatCLP(t *testing.T) {
	cases := map[int]string{
		0:       "$0",
		999:     "$999",
		1000:    "$1.000",
		45000:   "$45.000",
		1234567: "$1.234.567",
		-5500:   "-$5.500",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatCLP(in))
	}
}
