package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getenvFrom(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func TestNewDataDirPrecedence(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "explicit flag wins over everything",
			opts: Options{
				DataDir:       "/from/flag",
				ConfigDataDir: "/from/config",
				Getenv:        getenvFrom(map[string]string{EnvDataDir: "/from/env"}),
			},
			want: "/from/flag",
		},
		{
			name: "environment wins over config file",
			opts: Options{
				ConfigDataDir: "/from/config",
				Getenv:        getenvFrom(map[string]string{EnvDataDir: "/from/env"}),
			},
			want: "/from/env",
		},
		{
			name: "config file wins over compiled default",
			opts: Options{
				ConfigDataDir: "/from/config",
				Getenv:        getenvFrom(nil),
			},
			want: "/from/config",
		},
		{
			name: "compiled default as last resort",
			opts: Options{Getenv: getenvFrom(nil)},
			want: DefaultDataDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.HomeDir = "/home/test"
			p, err := New(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.DataDir())
		})
	}
}

func TestNewHomeResolution(t *testing.T) {
	p, err := New(Options{
		Getenv: getenvFrom(map[string]string{EnvHome: "/env/home"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "/env/home", p.HomeDir())

	p, err = New(Options{
		HomeDir: "/explicit/home",
		Getenv:  getenvFrom(map[string]string{EnvHome: "/env/home"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "/explicit/home", p.HomeDir())
}

func TestDirectorySet(t *testing.T) {
	p, err := New(Options{HomeDir: "/home/test", DataDir: "/usr/share/stardict/dic", Getenv: getenvFrom(nil)})
	require.NoError(t, err)

	// User directory first: the data directory is scanned later and
	// therefore wins bookname collisions.
	assert.Equal(t, []string{
		"/home/test/.stardict/dic",
		"/usr/share/stardict/dic",
	}, p.DirectorySet())
}

func TestPerUserPaths(t *testing.T) {
	p, err := New(Options{HomeDir: "/home/test", Getenv: getenvFrom(nil)})
	require.NoError(t, err)

	assert.Equal(t, "/home/test/.stardict", p.ConfDir())
	assert.Equal(t, "/home/test/.sdcv_ordering", p.OrderingFile())
	assert.Equal(t, "/home/test/.sdcv_history", p.HistoryFile())
}

func TestEnsureConfDir(t *testing.T) {
	home := t.TempDir()
	p, err := New(Options{HomeDir: home, Getenv: getenvFrom(nil)})
	require.NoError(t, err)

	require.NoError(t, p.EnsureConfDir())
	info, err := os.Stat(filepath.Join(home, StardictDirName))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent
	require.NoError(t, p.EnsureConfDir())
}
