package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"zeta/internal/errors"
	"zeta/internal/util"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var durangoArgs = []string{
	"calc", "-s", "DUR", "-m", "Ap",
	"--nd", "5881", "--ns", "769", "--ni", "1960",
	"--rho-s", "210321.91", "--rho-i", "536061.05", "--rho-d", "0.66973",
}

// resetFlags restores every flag to its default; cobra keeps values and
// Changed marks between executions.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t)
	var out, errOut bytes.Buffer
	err := run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	rootCmd.Version = "v0.9.0"
	defer func() { rootCmd.Version = Version }()

	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if out != "Zeta CLI version v0.9.0\n" {
		t.Errorf("output = %q", out)
	}
}

func TestIsCLIArg(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{"calc", true},
		{"standards", true},
		{"minerals", true},
		{"help", true},
		{"--version", true},
		{"-h", true},
		{"--debug", true},
		{"--log-file=zeta.log", true},
		{"-psn_0_12345", false},
		{"data.csv", false},
	}
	for _, tt := range tests {
		if got := isCLIArg(tt.arg); got != tt.want {
			t.Errorf("isCLIArg(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestCalcDurango(t *testing.T) {
	out, errOut, err := execute(t, durangoArgs...)
	if err != nil {
		t.Fatalf("calc failed: %v (stderr %q)", err, errOut)
	}

	rule := util.Rule(util.RuleWidth)
	want := strings.Join([]string{
		rule,
		"Standard used: Durango, 31.44 ± 0.018 Ma",
		"Mineral: Apatite",
		"Zeta (user equation): 239.88 Ma.cm²",
		"Uncertainty of Zeta: 10.68 Ma.cm²",
		"Relative uncertainty: 4.45 %",
		rule,
	}, "\n") + "\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
	if errOut != "" {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestCalcGeometryFactor(t *testing.T) {
	args := append(append([]string{}, durangoArgs...), "-g", "1")
	out, _, err := execute(t, args...)
	if err != nil {
		t.Fatalf("calc failed: %v", err)
	}
	if !strings.Contains(out, "Zeta (user equation): 119.94 Ma.cm²") {
		t.Errorf("output = %q", out)
	}
}

func TestCalcFromAreasJSON(t *testing.T) {
	out, _, err := execute(t,
		"calc", "--standard", "Durango", "--mineral", "apatite",
		"--nd", "5881", "--rho-d", "0.66973",
		"--ns", "769", "--ns-area", "0.003656",
		"--ni", "1960", "--ni-area", "0.003656",
		"--json")
	if err != nil {
		t.Fatalf("calc failed: %v", err)
	}

	var decoded struct {
		Standard struct {
			Code string `json:"code"`
		} `json:"standard"`
		Derived *struct {
			CountRatio float64 `json:"ns_ni_ratio"`
		} `json:"derived"`
		Result struct {
			Zeta float64 `json:"zeta"`
		} `json:"result"`
		RegistryDigest string `json:"registry_digest"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if decoded.Standard.Code != "DUR" {
		t.Errorf("standard = %q", decoded.Standard.Code)
	}
	if decoded.Derived == nil || util.Round(decoded.Derived.CountRatio, 6) != 0.392347 {
		t.Errorf("derived = %+v", decoded.Derived)
	}
	if util.Round(decoded.Result.Zeta, 2) != 239.88 {
		t.Errorf("zeta = %v", decoded.Result.Zeta)
	}
	if len(decoded.RegistryDigest) != 64 {
		t.Errorf("digest = %q", decoded.RegistryDigest)
	}
}

func TestCalcErrors(t *testing.T) {
	replace := func(flag, value string) []string {
		args := append([]string{}, durangoArgs...)
		for i := range args {
			if args[i] == flag {
				args[i+1] = value
			}
		}
		return args
	}

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "incompatible standard",
			args:    replace("-m", "Zrn"),
			wantErr: errors.ErrIncompatible,
			wantMsg: "not suitable",
		},
		{
			name:    "unknown standard",
			args:    replace("-s", "XYZ"),
			wantErr: errors.ErrUnknownStandard,
			wantMsg: "XYZ",
		},
		{
			name:    "zero Nd",
			args:    replace("--nd", "0"),
			wantErr: errors.ErrInvalidInput,
			wantMsg: "Nd",
		},
		{
			name:    "g out of range",
			args:    append(append([]string{}, durangoArgs...), "-g", "1.5"),
			wantErr: errors.ErrInvalidInput,
			wantMsg: "g",
		},
		{
			name:    "missing required flag",
			args:    []string{"calc", "-s", "DUR", "-m", "Ap"},
			wantMsg: "required",
		},
		{
			name:    "non-integer count",
			args:    replace("--ns", "7.5"),
			wantMsg: "--ns",
		},
		{
			name:    "densities and areas together",
			args:    append(append([]string{}, durangoArgs...), "--ns-area", "1", "--ni-area", "1"),
			wantMsg: "none of the others",
		},
		{
			name:    "only one density",
			args:    []string{"calc", "-s", "DUR", "-m", "Ap", "--nd", "1", "--ns", "1", "--ni", "1", "--rho-d", "1", "--rho-s", "1"},
			wantMsg: "must all be set",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, tt.args...)
			if err == nil {
				t.Fatalf("expected error, output %q", out)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.HasPrefix(errOut, "Error: ") {
				t.Errorf("stderr = %q, want Error: prefix", errOut)
			}
			if !strings.Contains(errOut, tt.wantMsg) {
				t.Errorf("stderr = %q, want it to mention %q", errOut, tt.wantMsg)
			}
			if out != "" {
				t.Errorf("no result should be printed: %q", out)
			}
		})
	}
}

func TestStandards(t *testing.T) {
	out, _, err := execute(t, "standards")
	if err != nil {
		t.Fatalf("standards failed: %v", err)
	}
	for _, code := range []string{"FCT", "FC1", "DUR", "MD", "MM", "TEM2", "TR"} {
		if !strings.Contains(out, code) {
			t.Errorf("listing lacks %s:\n%s", code, out)
		}
	}
	if !strings.Contains(out, "Durango") || !strings.Contains(out, "31.44 ± 0.018") {
		t.Errorf("listing lacks Durango age:\n%s", out)
	}
	if !strings.Contains(out, "registry ") {
		t.Errorf("listing lacks registry fingerprint:\n%s", out)
	}
}

func TestStandardsForMineral(t *testing.T) {
	out, _, err := execute(t, "standards", "--mineral", "Titanite", "--json")
	if err != nil {
		t.Fatalf("standards failed: %v", err)
	}
	var decoded struct {
		Standards []struct {
			Code     string   `json:"code"`
			Minerals []string `json:"minerals"`
		} `json:"standards"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	var codes []string
	for _, s := range decoded.Standards {
		codes = append(codes, s.Code)
	}
	if strings.Join(codes, ",") != "FCT,MM" {
		t.Errorf("titanite standards = %v, want FCT,MM", codes)
	}

	_, errOut, err := execute(t, "standards", "-m", "Quartz")
	if !errors.IsUnknownMineral(err) {
		t.Errorf("expected unknown mineral error, got %v", err)
	}
	if !strings.Contains(errOut, "Error: ") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestMinerals(t *testing.T) {
	out, _, err := execute(t, "minerals")
	if err != nil {
		t.Fatalf("minerals failed: %v", err)
	}
	for _, want := range []string{"Apatite", "Zircon", "Titanite", "TEM2, TR"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing lacks %q:\n%s", want, out)
		}
	}
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zeta.log")
	args := append([]string{"--log-file", path}, durangoArgs...)
	if _, _, err := execute(t, args...); err != nil {
		t.Fatalf("calc failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "calibration computed standard=DUR") {
		t.Errorf("log = %q", data)
	}
}

func TestLogFileDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zeta.log")
	args := append([]string{"--log-file", path, "--log-level", "debug"}, durangoArgs...)
	if _, _, err := execute(t, args...); err != nil {
		t.Fatalf("calc failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"command started command=calc", "from_areas=false", "command finished command=calc elapsed="} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log lacks %q:\n%s", want, data)
		}
	}
}

func TestLogFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "zeta.log")
	args := append([]string{"--log-file", path}, durangoArgs...)
	_, errOut, err := execute(t, args...)
	if err == nil {
		t.Fatal("expected error for unwritable log file")
	}
	if !strings.Contains(errOut, "opening log file") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestBadLogLevel(t *testing.T) {
	args := append([]string{"--log-level", "loud"}, durangoArgs...)
	_, errOut, err := execute(t, args...)
	if err == nil {
		t.Fatal("expected error for unknown log level")
	}
	if !strings.Contains(errOut, "unknown log level") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestReporterBannerWidth(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, &buf)
	if r.width != util.RuleWidth {
		t.Errorf("width = %d, want %d for a non-terminal", r.width, util.RuleWidth)
	}
}
