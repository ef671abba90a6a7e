package smarts

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/hhkbp2/go-logging"
)

// Fixed file names of the SMARTS 2.9.5 batch interface. The engine reads and
// writes these relative to its working directory; they cannot be renamed per
// invocation.
const (
	InputFile     = "smarts295.inp.txt" // input card deck
	BroadbandFile = "smarts295.out.txt" // broadband results (File 16)
	SpectralFile  = "smarts295.ext.txt" // spreadsheet spectral results (File 17)
	ScanFile      = "smarts295.scn.txt" // smoothed results (File 18)
)

// The fixed file names make concurrent runs in the same directory race on the
// input and output files, so the whole encode/invoke/decode/cleanup sequence
// is serialized.
var runMu sync.Mutex

// Run encodes the configuration, invokes the engine and decodes the spectral
// result table. The engine runs inside settings.dir() when one is configured;
// the previous working directory is restored on every path, including
// validation errors raised before any file is written.
func Run(cfg *Config, settings *Settings) (*Spectrum, error) {
	runMu.Lock()
	defer runMu.Unlock()

	if dir := settings.dir(); dir != "" {
		prev, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("smarts: getwd: %w", err)
		}
		if err := os.Chdir(dir); err != nil {
			return nil, fmt.Errorf("%w: cannot enter %s: %v", ErrEngineNotFound, dir, err)
		}
		defer os.Chdir(prev)
	}

	return runLocked(cfg, settings)
}

func runLocked(cfg *Config, settings *Settings) (*Spectrum, error) {
	// Validation happens before any file is touched.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	exe, err := findEngine(settings.executable())
	if err != nil {
		return nil, err
	}

	// Stale files from a previous run must not be mistaken for this run's
	// output.
	Cleanup()
	defer Cleanup()

	if err := cfg.WriteInputFile(InputFile); err != nil {
		return nil, fmt.Errorf("smarts: write %s: %w", InputFile, err)
	}

	if err := invoke(exe, settings.timeout()); err != nil {
		return nil, err
	}

	sp, err := ReadSpectrum(SpectralFile)
	if err != nil {
		return nil, err
	}
	return sp, nil
}

func invoke(exe string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, exe)
	// The interactive build waits for a keypress after the run.
	cmd.Stdin = strings.NewReader("\n")

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w after %s", ErrEngineTimeout, timeout)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngineFailure, err)
	}
	return nil
}

// engineCandidates are tried in order inside the working directory, then on
// PATH. The batch build reads the input deck without prompting and is
// preferred.
var engineCandidates = []string{"smarts295bat", "smarts295"}

func findEngine(override string) (string, error) {
	if override != "" {
		if fileExists(override) {
			// A bare name must not fall through to a PATH lookup by exec.
			if filepath.Base(override) == override {
				return "./" + override, nil
			}
			return override, nil
		}
		if path, err := exec.LookPath(override); err == nil {
			return path, nil
		}
		return "", fmt.Errorf("%w: executable %q", ErrEngineNotFound, override)
	}

	suffix := ""
	if runtime.GOOS == "windows" {
		suffix = ".exe"
	}
	for _, cand := range engineCandidates {
		name := cand + suffix
		if fileExists(name) {
			return "./" + name, nil
		}
	}
	for _, cand := range engineCandidates {
		if path, err := exec.LookPath(cand + suffix); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %v in %s and on PATH", ErrEngineNotFound,
		engineCandidates, cwdOrDot())
}

// Cleanup removes the transient engine files from the current directory.
// A file that does not exist is not an error; any other removal failure is
// logged as a warning, because a stale file silently reused by the next run
// is a correctness hazard.
func Cleanup() {
	logger := logging.GetLogger("smarts")
	for _, name := range []string{InputFile, BroadbandFile, SpectralFile, ScanFile} {
		if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warnf("cleanup: cannot remove %s: %v", name, err)
		}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func cwdOrDot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
