package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "off"))
	err := cmd.Execute()
	return out.String(), err
}

func TestMatchCmd(t *testing.T) {
	out, err := run(t, "match", "2021,2022/feb,mar/sat", "2021-02-06")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "match", "2021/feb/sat", "2021-02-07")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	_, err = run(t, "match", "y/foo/d", "2021-02-07")
	assert.Error(t, err)

	out, err = run(t, "match", "y/foo,feb/d", "2021-02-07", "--lenient")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestDatesCmd(t *testing.T) {
	out, err := run(t, "dates", "2021/feb/sat", "2021-01-01", "2021-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2021-02-06\n2021-02-13\n2021-02-20\n2021-02-27\n", out)

	out, err = run(t, "dates", "2021/feb/sat", "2021-01-01", "2021-12-31", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, "2021-02-06\n2021-02-13\n", out)

	_, err = run(t, "dates", "2021/feb/sat", "2021-01-01", "tomorrow")
	assert.Error(t, err)
}

func TestNthCmdHolidays(t *testing.T) {
	out, err := run(t, "nth", "2022", "7", "2", "--holidays", "us")
	require.NoError(t, err)
	assert.Equal(t, "2022-07-05\n", out)

	out, err = run(t, "nth", "2022", "7", "2")
	require.NoError(t, err)
	assert.Equal(t, "2022-07-04\n", out)

	_, err = run(t, "nth", "2022", "13", "2")
	assert.Error(t, err)
}

func TestTimeCmd(t *testing.T) {
	out, err := run(t, "time", "2h:0,30m:0", "14:30:00")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestNextCmd(t *testing.T) {
	out, err := run(t, "next", "y/m/t1", "30 9 * * *", "2022-01-01", "--count", "2")
	require.NoError(t, err)
	assert.Equal(t, "2022-01-03T09:30:00Z\n2022-02-01T09:30:00Z\n", out)
}

func TestCalendarFileAndImport(t *testing.T) {
	dir := t.TempDir()
	calendarFile := filepath.Join(dir, "calendar.csv")
	content := "date,workday\n2022-01-01,0\n2022-01-02,0\n2022-01-03,0\n2022-01-04,1\n2022-01-05,1\n"
	require.NoError(t, os.WriteFile(calendarFile, []byte(content), 0o600))

	out, err := run(t, "dates", "y/m/t1", "2022-01-01", "2022-01-05", "--calendar", calendarFile)
	require.NoError(t, err)
	assert.Equal(t, "2022-01-04\n", out)

	database := filepath.Join(dir, "calendar.db")
	out, err = run(t, "import", calendarFile, "--database", database)
	require.NoError(t, err)
	assert.Equal(t, "imported 5 days\n", out)

	out, err = run(t, "match", "y/m/t2", "2022-01-05", "--database", database)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	_, err = run(t, "match", "y/m/t1", "2022-02-01", "--database", database)
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	yamlConfig := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlConfig, []byte("holidays: us\nlenient: true\n"), 0o600))

	out, err := run(t, "nth", "2022", "7", "2", "--config", yamlConfig)
	require.NoError(t, err)
	assert.Equal(t, "2022-07-05\n", out)

	tomlConfig := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(tomlConfig, []byte("holidays = \"us\"\nlog_level = \"error\"\n"), 0o600))

	out, err = run(t, "match", "2022/jul/t2", "2022-07-05", "--config", tomlConfig)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	// flags override the config file
	out, err = run(t, "nth", "2022", "7", "2", "--config", tomlConfig, "--holidays", "")
	require.NoError(t, err)
	assert.Equal(t, "2022-07-04\n", out)

	_, err = run(t, "nth", "2022", "7", "2", "--config", filepath.Join(dir, "config.ini"))
	assert.Error(t, err)
}

func TestUnknownHolidays(t *testing.T) {
	_, err := run(t, "nth", "2022", "7", "2", "--holidays", "mars")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "mars"))
}
