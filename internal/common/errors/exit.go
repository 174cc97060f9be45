package errors

// Process exit codes. Per-applicant failures never change the exit code; a
// run that completes and writes its output exits zero regardless of how many
// individual submissions failed.
const (
	ExitOK     = 0
	ExitFault  = 1
	ExitConfig = 2
)

var configStageCodes = map[ErrorCode]bool{
	ErrCodeConfigurationInvalid: true,
	ErrCodeTokenMissing:         true,
	ErrCodeEnvironmentUnknown:   true,
	ErrCodeBureauUnknown:        true,
	ErrCodeInputUnreadable:      true,
	ErrCodeInputNotArray:        true,
	ErrCodeApplicantInvalid:     true,
	ErrCodeOutputUnwritable:     true,
}

// IsConfigStage reports whether err belongs to the configuration/IO error
// class that aborts the run before or after the submission loop.
func IsConfigStage(err error) bool {
	stdErr, ok := err.(*StandardError)
	if !ok {
		return false
	}
	return configStageCodes[stdErr.Code]
}

// ExitCode maps an error from the run to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsConfigStage(err) {
		return ExitConfig
	}
	return ExitFault
}
