package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apmath/intcalc/internal/bigint"
	"github.com/apmath/intcalc/internal/testutil"
)

func TestFormatQuietResult(t *testing.T) {
	t.Parallel()

	if got := FormatQuietResult(bigint.MustParse("255"), 16); got != "ff" {
		t.Errorf("FormatQuietResult = %q, want ff", got)
	}
	if got := FormatQuietResult(bigint.MustParse("-42"), 10); got != "-42" {
		t.Errorf("FormatQuietResult = %q, want -42", got)
	}
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	DisplayQuietResult(&buf, bigint.MustParse("120"), 10)
	if buf.String() != "120\n" {
		t.Errorf("quiet output = %q, want bare value and newline", buf.String())
	}
}

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()

	t.Run("WritesHeaderAndValue", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.txt")
		cfg := OutputConfig{OutputFile: path, OutputBase: 10}

		err := WriteResultToFile(bigint.MustParse("3628800"), "factorial(10)", time.Second, "native", cfg)
		if err != nil {
			t.Fatalf("WriteResultToFile failed: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading result file: %v", err)
		}
		for _, want := range []string{"# Backend: native", "# Expression: factorial(10)", "# Base: 10", "factorial(10) =\n3628800"} {
			if !strings.Contains(string(content), want) {
				t.Errorf("file missing %q:\n%s", want, content)
			}
		}
	})

	t.Run("CreatesMissingDirectories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deep", "result.txt")
		cfg := OutputConfig{OutputFile: path, OutputBase: 10}

		if err := WriteResultToFile(bigint.One(), "incr(0)", 0, "native", cfg); err != nil {
			t.Fatalf("WriteResultToFile failed: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("result file not created: %v", err)
		}
	})

	t.Run("EmptyPathIsNoOp", func(t *testing.T) {
		if err := WriteResultToFile(bigint.One(), "incr(0)", 0, "native", OutputConfig{}); err != nil {
			t.Errorf("empty path should be a no-op, got %v", err)
		}
	})
}

func TestDisplayResultWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("QuietMode", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := OutputConfig{OutputBase: 10, Quiet: true}
		if err := DisplayResultWithConfig(&buf, bigint.MustParse("76"), "modpow(1024, 1024, 100)", time.Second, "native", cfg); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "76\n" {
			t.Errorf("quiet output = %q", buf.String())
		}
	})

	t.Run("StandardWithFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		var buf bytes.Buffer
		cfg := OutputConfig{OutputFile: path, OutputBase: 10}
		if err := DisplayResultWithConfig(&buf, bigint.MustParse("76"), "modpow(1024, 1024, 100)", time.Second, "native", cfg); err != nil {
			t.Fatal(err)
		}
		out := testutil.StripAnsiCodes(buf.String())
		if !strings.Contains(out, "Result saved to:") {
			t.Errorf("output missing save notice:\n%s", out)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("result file not written: %v", err)
		}
	})
}

func TestPrintExecutionConfigAndMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintExecutionMode([]string{"native"}, &buf)
	out := testutil.StripAnsiCodes(buf.String())
	if !strings.Contains(out, "Single computation with the native backend") {
		t.Errorf("single mode output:\n%s", out)
	}

	buf.Reset()
	PrintExecutionMode([]string{"native", "math/big"}, &buf)
	out = testutil.StripAnsiCodes(buf.String())
	if !strings.Contains(out, "Cross-checked run of [native, math/big]") {
		t.Errorf("cross-check mode output:\n%s", out)
	}
}
