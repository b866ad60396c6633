package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newDirectoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/autocomplete/schools":
			w.Write([]byte(`{"schoolMatches":[{"schoolid":"2","schoolName":"Lincoln Elementary School","city":"Austin","state":"TX"}]}`))
		case "/schools":
			w.Write([]byte(`{"schoolList":[{"schoolid":"1","schoolName":"Lincoln Elementary","city":"Austin","state":"TX","rating":9}]}`))
		case "/schools/1":
			w.Write([]byte(`{"schoolid":"1","schoolName":"Lincoln Elementary","city":"Austin","state":"TX"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setEnv(t *testing.T, baseURL string) {
	t.Setenv("SCHOOLFINDER_APP_ID", "id")
	t.Setenv("SCHOOLFINDER_APP_KEY", "key")
	t.Setenv("SCHOOLFINDER_BASE_URL", baseURL)
	t.Setenv("SCHOOLFINDER_RATE_MIN_DELAY", "0s")
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"schoolfinder", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestSetupLogger(t *testing.T) {
	_, err := runApp(t, "--log-level", "loud", "search", "lincoln")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestSearchCommand(t *testing.T) {
	srv := newDirectoryServer(t)
	setEnv(t, srv.URL)

	t.Run("text output", func(t *testing.T) {
		out, err := runApp(t, "search", "lincoln", "elementary", "austin", "tx")
		require.NoError(t, err)
		assert.Contains(t, out, "Found 1 schools")
		assert.Contains(t, out, "Lincoln Elementary (Austin, TX)")
		assert.Contains(t, out, "via city-specific")
	})

	t.Run("explain", func(t *testing.T) {
		out, err := runApp(t, "search", "--explain", "lincoln elementary austin tx")
		require.NoError(t, err)
		assert.Contains(t, out, `parsed: terms="lincoln elementary" city="austin" state="tx"`)
		assert.Contains(t, out, "smart-autocomplete(30)")
		assert.Contains(t, out, "city-specific(25)")
		assert.Contains(t, out, "ranked: 1")
	})

	t.Run("json", func(t *testing.T) {
		out, err := runApp(t, "search", "--json", "lincoln elementary austin tx")
		require.NoError(t, err)
		assert.Contains(t, out, `"name": "Lincoln Elementary"`)
	})

	t.Run("query required", func(t *testing.T) {
		_, err := runApp(t, "search")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query is required")
	})

	t.Run("negative max", func(t *testing.T) {
		_, err := runApp(t, "search", "--max", "-1", "lincoln")
		require.Error(t, err)
	})
}

func TestSearchCommand_MissingCredentials(t *testing.T) {
	t.Setenv("SCHOOLFINDER_APP_ID", "")
	t.Setenv("SCHOOLFINDER_APP_KEY", "")

	_, err := runApp(t, "search", "lincoln")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials")
}

func TestGetCommand(t *testing.T) {
	srv := newDirectoryServer(t)
	setEnv(t, srv.URL)

	out, err := runApp(t, "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "1"`)

	_, err = runApp(t, "get", "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = runApp(t, "get")
	require.Error(t, err)
}

func TestCommandFlags(t *testing.T) {
	app := newApp()
	var search *cli.Command
	for _, cmd := range app.Commands {
		if cmd.Name == "search" {
			search = cmd
		}
	}
	require.NotNil(t, search)

	var maxFlag *cli.IntFlag
	for _, flag := range search.Flags {
		if f, ok := flag.(*cli.IntFlag); ok && f.Name == "max" {
			maxFlag = f
		}
	}
	require.NotNil(t, maxFlag)
	assert.Equal(t, 15, maxFlag.Value)
}
