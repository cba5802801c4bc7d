package sprt

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/llr/pkg/stats"
)

func configWith(wins, losses, draws int) Config {
	config := DefaultConfig()
	config.State = State{Wins: wins, Losses: losses, Draws: draws}
	return config
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 0.0, config.Elo0)
	assert.Equal(t, 5.0, config.Elo1)
	assert.Equal(t, 0.05, config.Alpha)
	assert.Equal(t, 0.05, config.Beta)
	assert.Equal(t, State{}, config.State)
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		err     error
		message string
	}{
		{"valid", func(c *Config) { c.State = State{3, 2, 5} }, nil, ""},
		{"alpha zero", func(c *Config) { c.Alpha = 0 }, ErrInvalidConfig, "--alpha 0 must be greater than 0"},
		{"alpha one", func(c *Config) { c.Alpha = 1 }, ErrInvalidConfig, "--alpha 1 must be less than 1"},
		{"beta negative", func(c *Config) { c.Beta = -0.5 }, ErrInvalidConfig, "--beta -0.5 must be greater than 0"},
		{"beta nan", func(c *Config) { c.Beta = math.NaN() }, ErrInvalidConfig, "--beta"},
		{"elo0 infinite", func(c *Config) { c.Elo0 = math.Inf(-1) }, ErrInvalidConfig, "--elo0 -Inf must be a finite number"},
		{"elo1 nan", func(c *Config) { c.Elo1 = math.NaN() }, ErrInvalidConfig, "--elo1 NaN must be a finite number"},
		{"negative wins", func(c *Config) { c.State.Wins = -3 }, ErrInvalidConfig, "--wins -3 must not be less than 0"},
		{"no draws", func(c *Config) { c.State = State{Wins: 50, Losses: 50} }, stats.ErrDegenerateDistribution, "wins 50, losses 50, draws 0"},
		{"no losses", func(c *Config) { c.State = State{Wins: 5, Draws: 1} }, stats.ErrDegenerateDistribution, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)

			err := config.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	config := DefaultConfig()
	config.Alpha = 2
	config.State.Draws = -1

	err := config.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "--alpha")
	assert.Contains(t, err.Error(), "--draws")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	sprt, err := New(configWith(50, 50, 0))
	assert.Nil(t, sprt)
	assert.ErrorIs(t, err, stats.ErrDegenerateDistribution)
}

func TestResult(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		llr     float64
		verdict stats.Verdict
		report  string
	}{
		{
			name:    "no games",
			config:  DefaultConfig(),
			llr:     0,
			verdict: stats.Continue,
			report:  "LLR: 0.0 (-2.94, 2.94)\nContinue Playing\n",
		},
		{
			name:    "inconclusive",
			config:  configWith(300, 200, 500),
			llr:     2.052970309084934,
			verdict: stats.Continue,
			report:  "LLR: 2.05 (-2.94, 2.94)\nContinue Playing\n",
		},
		{
			name:    "h1",
			config:  configWith(2000, 1800, 6200),
			llr:     3.631951344382824,
			verdict: stats.AcceptH1,
			report:  "LLR: 3.63 (-2.94, 2.94)\nH1 Accepted\n",
		},
		{
			name:    "h0",
			config:  configWith(1800, 2000, 6200),
			llr:     -5.695688130648637,
			verdict: stats.AcceptH0,
			report:  "LLR: -5.7 (-2.94, 2.94)\nH0 Accepted\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sprt, err := New(tt.config)
			require.NoError(t, err)

			result, err := sprt.Result()
			require.NoError(t, err)

			assert.InDelta(t, tt.llr, result.LLR, 1e-9)
			assert.Equal(t, tt.verdict, result.Verdict)
			assert.Equal(t, sprt.Bounds(), result.Bounds)

			var out bytes.Buffer
			require.NoError(t, result.Report(&out))
			assert.Equal(t, tt.report, out.String())
		})
	}
}

func TestResultAsymmetricBounds(t *testing.T) {
	config := configWith(300, 200, 500)
	config.Alpha = 0.01
	config.Beta = 0.2

	sprt, err := New(config)
	require.NoError(t, err)

	result, err := sprt.Result()
	require.NoError(t, err)

	// ln(0.2/0.99) and ln(0.8/0.01)
	assert.Equal(t, "LLR: 2.05 (-1.6, 4.38)", result.String())
	assert.Equal(t, stats.Continue, result.Verdict)
}

func TestResultNonFinite(t *testing.T) {
	config := configWith(300, 200, 500)
	config.Elo0 = 0
	config.Elo1 = 1e6

	sprt, err := New(config)
	require.NoError(t, err)

	_, err = sprt.Result()
	assert.ErrorIs(t, err, ErrNonFiniteLLR)
}

func TestSwappedHypotheses(t *testing.T) {
	forward := configWith(300, 200, 500)
	backward := forward
	backward.Elo0, backward.Elo1 = forward.Elo1, forward.Elo0

	a, err := New(forward)
	require.NoError(t, err)
	b, err := New(backward)
	require.NoError(t, err)

	assert.Equal(t, a.LLR(), -b.LLR())
}
