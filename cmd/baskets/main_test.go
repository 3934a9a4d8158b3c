package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeReturnsCsv(t *testing.T, path string, numSecurities, numPeriods int) {
	var b strings.Builder
	b.WriteString("date,symbol,return\n")
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	for s := 0; s < numSecurities; s++ {
		beta := 0.2 + 0.05*float64(s)
		for p := 0; p < numPeriods; p++ {
			market := 0.01*math.Sin(float64(p)) + 0.002*float64(p%4)
			idio := 0.003 * math.Cos(float64(p*(s+1)))
			fmt.Fprintf(&b, "%s,TKR%02d,%g\n",
				start.AddDate(0, p, 0).Format(time.DateOnly), s, 0.0005*float64(s%7)+beta*market+idio)
		}
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	t.Run("prints baskets and writes csvs", func(t *testing.T) {
		dir := t.TempDir()
		testChdir(t, dir)
		returnsPath := filepath.Join(dir, "returns.csv")
		writeReturnsCsv(t, returnsPath, 40, 24)
		outDir := filepath.Join(dir, "results")

		out, err := execute("run", "--returns", returnsPath, "--out", outDir)
		require.NoError(t, err, out)

		require.Contains(t, out, "40 securities, 24 periods")
		require.Contains(t, out, "Low Risk / Defensive")
		require.Contains(t, out, "Basket 5:")
		require.Contains(t, out, "Top securities by Sharpe ratio")

		for _, name := range []string{
			"factor_loadings.csv",
			"basket_summary.csv",
			"security_statistics.csv",
			"basket_1_holdings.csv",
			"basket_5_holdings.csv",
		} {
			_, err := os.Stat(filepath.Join(outDir, name))
			require.NoError(t, err, name)
		}
	})

	t.Run("persist without db", func(t *testing.T) {
		dir := t.TempDir()
		testChdir(t, dir)
		returnsPath := filepath.Join(dir, "returns.csv")
		writeReturnsCsv(t, returnsPath, 40, 24)

		_, err := execute("run", "--returns", returnsPath, "--persist")
		require.ErrorContains(t, err, "db.url")
	})

	t.Run("missing returns file", func(t *testing.T) {
		testChdir(t, t.TempDir())
		_, err := execute("run", "--returns", "nope.csv")
		require.Error(t, err)
	})
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testChdir: restoring working directory: " + err.Error())
		}
	})
}
