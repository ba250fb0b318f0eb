package model

// CompileStatus classifies the outcome of a compiler invocation.
type CompileStatus string

const (
	// CompileSuccess means the compiler ran and accepted the source.
	CompileSuccess CompileStatus = "success"
	// CompileFailed means the compiler ran and rejected the source, or
	// the process could not be started for a reason other than a
	// missing executable.
	CompileFailed CompileStatus = "failed"
	// CompileToolchainNotFound means the compiler executable could not
	// be spawned. This is an environment problem, not a source problem.
	CompileToolchainNotFound CompileStatus = "toolchain-not-found"
	// CompileConfigError means no invocation was attempted: no saved
	// source file, or no resolvable toolchain root.
	CompileConfigError CompileStatus = "config-error"
)

// CompileRequest is a fully resolved compiler invocation. It is built
// fresh per compile and never persisted.
type CompileRequest struct {
	SourcePath    Path
	OutputPath    Path
	ToolchainRoot string
	// Executable is the absolute path of the compiler binary.
	Executable string
	// Args are the arguments passed after the executable name.
	Args []string
	// Env is the complete environment for the child process, with the
	// toolchain's library and binary directories prepended.
	Env []string
}

// CompileResult is the structured outcome of a compile attempt.
type CompileResult struct {
	Status CompileStatus
	// Diagnostics holds the compiler's stderr for CompileFailed, or a
	// human-readable reason for the other non-success statuses.
	Diagnostics string
	// Output holds the compiler's stdout, when a process ran.
	Output string
}

// Ok reports whether the compile succeeded.
func (r CompileResult) Ok() bool {
	return r.Status == CompileSuccess
}
