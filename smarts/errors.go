package smarts

import "errors"

// Failure conditions surfaced by this package. Every error returned by the
// encode/run/decode path wraps one of these, so callers can classify failures
// with errors.Is.
var (
	// ErrInvalidConfig: an option code outside its enumerated domain, or a
	// subfield required by the chosen option code is missing. Detected before
	// any file I/O.
	ErrInvalidConfig = errors.New("smarts: invalid configuration")

	// ErrUnknownMaterial: a ground-cover name not present in the albedo table.
	ErrUnknownMaterial = errors.New("smarts: unknown material")

	// ErrEngineNotFound: no candidate SMARTS executable could be located.
	ErrEngineNotFound = errors.New("smarts: engine not found")

	// ErrEngineFailure: the engine exited with a nonzero status or could not
	// be started.
	ErrEngineFailure = errors.New("smarts: engine execution failed")

	// ErrEngineTimeout: the engine did not finish within Settings.Timeout.
	ErrEngineTimeout = errors.New("smarts: engine timed out")

	// ErrNoOutput: the spectral output file is absent or does not parse as a
	// whitespace-delimited numeric table.
	ErrNoOutput = errors.New("smarts: no output produced")
)
