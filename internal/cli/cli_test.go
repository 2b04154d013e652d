package cli

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/coalprint/internal/config"
	"github.com/rshade/coalprint/internal/footprint"
	"github.com/rshade/coalprint/internal/tui"
)

// exampleArgs are the flag values for the 75.60 kg CO2e worked example.
var exampleArgs = []string{ //nolint:gochecknoglobals // Shared test fixture.
	"--excavation", "10",
	"--transportation", "20",
	"--equipment", "5",
	"--electricity", "100",
	"--heat", "1000",
	"--air", "50",
	"--other", "2",
}

// runRoot executes the root command with args in an isolated config home and
// returns stdout and stderr.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runRootIn(t, t.TempDir(), args...)
}

// runRootIn is runRoot with COALPRINT_HOME set to home.
func runRootIn(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("COALPRINT_HOME", home)
	t.Setenv("COALPRINT_LOG_LEVEL", "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd("v0.1.0")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_RequiresTerminal(t *testing.T) {
	orig := detectMode
	t.Cleanup(func() { detectMode = orig })
	detectMode = func(_, _ bool) tui.OutputMode { return tui.OutputModePlain }

	_, _, err := runRoot(t)
	require.ErrorIs(t, err, ErrNotInteractive)
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd("dev")
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"calc", "config", "factors", "version"})
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("no-color"))
}

func TestCalcCmd_Table(t *testing.T) {
	out, _, err := runRoot(t, append([]string{"calc"}, exampleArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "CARBON FOOTPRINT SUMMARY")
	assert.Contains(t, out, "excavation")
	assert.Contains(t, out, "Total Emissions: 75.60 kg CO2e")
	assert.Contains(t, out, "7.6% of 1000 kg CO2e")
	assert.Contains(t, out, "Total Emissions: 75.60 kg CO2e (≈ 394 mi, 9,197 phones)")
}

func TestCalcCmd_JSON(t *testing.T) {
	args := append([]string{"calc"}, exampleArgs...)
	out, _, err := runRoot(t, append(args, "--output", "json")...)
	require.NoError(t, err)

	var report footprint.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.InDelta(t, 75.6, report.TotalKg, 1e-9)
	assert.Equal(t, "7.6%", report.PercentDisplay)
	require.Len(t, report.Lines, footprint.CategoryCount)
	assert.Equal(t, "heat", report.Lines[footprint.Heat].Category)
}

func TestCalcCmd_Styled(t *testing.T) {
	args := append([]string{"calc"}, exampleArgs...)
	out, _, err := runRoot(t, append(args, "--output", "styled")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Total Emissions: 75.60 kg CO2e")
	assert.Contains(t, out, "Carbon Footprint Summary")
}

func TestCalcCmd_Auto(t *testing.T) {
	args := append([]string{"calc"}, exampleArgs...)
	args = append(args, "--output", "auto")

	t.Run("plain terminal gets the table", func(t *testing.T) {
		orig := detectMode
		t.Cleanup(func() { detectMode = orig })
		var gotNoColor, gotNonInteractive bool
		detectMode = func(noColor, nonInteractive bool) tui.OutputMode {
			gotNoColor, gotNonInteractive = noColor, nonInteractive
			return tui.OutputModePlain
		}

		out, _, err := runRoot(t, append(args, "--no-color")...)
		require.NoError(t, err)
		assert.Contains(t, out, "Total Emissions: 75.60 kg CO2e (≈ 394 mi, 9,197 phones)")
		assert.NotContains(t, out, "Carbon Footprint Summary")
		assert.True(t, gotNoColor)
		assert.True(t, gotNonInteractive)
	})

	t.Run("color terminal gets the summary box", func(t *testing.T) {
		orig := detectMode
		t.Cleanup(func() { detectMode = orig })
		detectMode = func(_, _ bool) tui.OutputMode { return tui.OutputModeStyled }

		out, _, err := runRoot(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "Carbon Footprint Summary")
	})
}

func TestAutoFormat(t *testing.T) {
	assert.Equal(t, config.OutputTable, autoFormat(tui.OutputModePlain))
	assert.Equal(t, config.OutputStyled, autoFormat(tui.OutputModeStyled))
	assert.Equal(t, config.OutputStyled, autoFormat(tui.OutputModeInteractive))
}

func TestCalcCmd_MissingFields(t *testing.T) {
	out, stderr, err := runRoot(t, "calc", "--excavation", "10", "--heat", "-1")
	require.Error(t, err)

	assert.Empty(t, out)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Len(t, inputErr.Fields, 6)
	require.ErrorIs(t, err, footprint.ErrNegative)
	require.ErrorIs(t, err, footprint.ErrRequired)
	assert.Contains(t, err.Error(), "6 field(s) need attention")
	assert.Contains(t, err.Error(), "transportation")
	assert.NotContains(t, err.Error(), "excavation")
	assert.Contains(t, stderr, "--heat: "+footprint.FieldErrorMessage)
	assert.Contains(t, stderr, "--other: "+footprint.FieldErrorMessage)
}

func TestCalcCmd_NonNumericCountsAsZero(t *testing.T) {
	args := []string{"calc"}
	args = append(args, exampleArgs...)
	args = append(args, "--air", "lots")

	out, _, err := runRoot(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Emissions: 74.60 kg CO2e")
	assert.Contains(t, out, "counted as 0")
}

func TestCalcCmd_BadOutputFormat(t *testing.T) {
	args := append([]string{"calc"}, exampleArgs...)
	_, _, err := runRoot(t, append(args, "--output", "xml")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format: xml")
}

func TestFactorsCmd(t *testing.T) {
	out, _, err := runRoot(t, "factors")
	require.NoError(t, err)

	assert.Contains(t, out, "KG CO2E PER UNIT")
	assert.Contains(t, out, "equipment")
	assert.Contains(t, out, "2.5")
}

func TestFactorsCmd_Filter(t *testing.T) {
	out, _, err := runRoot(t, "factors", "Heat", "air")
	require.NoError(t, err)
	assert.Contains(t, out, "heat")
	assert.Contains(t, out, "air")
	assert.NotContains(t, out, "equipment")

	_, _, err = runRoot(t, "factors", "methane")
	require.ErrorIs(t, err, footprint.ErrUnknownCategory)
	assert.Contains(t, err.Error(), `"methane"`)
}

func TestVersionCmd(t *testing.T) {
	out, _, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "coalprint v0.1.0\n", out)
}
