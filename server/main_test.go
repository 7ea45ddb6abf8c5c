package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratesServer(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.True(t, strings.HasSuffix(req.URL.Path, "/USD"))
		_, _ = rw.Write([]byte(`{"base":"USD","rates":{"USD":1,"PKR":278.5,"EUR":0.92}}`))
	}))
	t.Cleanup(server.Close)
	t.Setenv("CONVERTER_RATES_URL", server.URL)
	t.Setenv("CONVERTER_LOGGER_LEVEL", "none")
	return server
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCmd(t *testing.T) {
	ratesServer(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default pair", []string{"convert", "10"}, "10 USD = 2785.00 PKR\n"},
		{"explicit pair", []string{"convert", "92", "eur", "usd"}, "92 EUR = 100.00 USD\n"},
		{"destination driving", []string{"convert", "--driving", "destination", "92", "USD", "EUR"}, "100.00 USD = 92 EUR\n"},
		{"zero", []string{"convert", "0", "USD", "XYZ"}, "0 USD = 0 XYZ\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertCmd_UnknownCurrency(t *testing.T) {
	ratesServer(t)

	_, err := execute(t, "", "convert", "10", "USD", "XYZ")

	assert.ErrorContains(t, err, "unknown currency")
}

func TestConvertCmd_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	t.Setenv("CONVERTER_RATES_URL", server.URL)
	t.Setenv("CONVERTER_LOGGER_LEVEL", "none")

	_, err := execute(t, "", "convert", "10")

	assert.Error(t, err)
}

func TestReplCmd(t *testing.T) {
	ratesServer(t)

	out, err := execute(t, "show\nquit\n", "repl")

	require.NoError(t, err)
	assert.Contains(t, out, "*from USD 0\n to   PKR 0\n")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)

	_ = level.Info(logger).Log("msg", "hidden")
	_ = level.Warn(logger).Log("msg", "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=warn")
	assert.Contains(t, buf.String(), "msg=shown")

	_, err = newLogger(&buf, "loud")
	assert.Error(t, err)
}
