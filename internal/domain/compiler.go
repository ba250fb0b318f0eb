package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cobble.dev/pkg/cobble/internal/adapter"
	m "cobble.dev/pkg/cobble/internal/model"
)

const (
	// ToolchainEnvVar overrides the toolchain root when set.
	ToolchainEnvVar = "GNUBASE"

	// libPathVar is the GnuCOBOL copybook/library search variable that
	// gains the toolchain's library directories.
	libPathVar = "COBPATH"

	// binPathVar is the executable search variable that gains the
	// toolchain's binary directory.
	binPathVar = "PATH"

	compilerName = "cobc"
)

// CompileOptions parameterizes a single compile. The zero value means:
// resolve the toolchain from the process environment and platform
// defaults, and inherit the process environment.
type CompileOptions struct {
	OutputPath m.Path

	// ToolchainRoot, when non-empty, wins over the GNUBASE environment
	// variable and the platform default.
	ToolchainRoot string

	// BaseEnv is the environment to extend; nil means os.Environ().
	BaseEnv []string

	// Platform overrides runtime.GOOS, for tests.
	Platform string

	// LookupEnv overrides os.Getenv, for tests.
	LookupEnv func(string) string
}

// Compiler resolves the GnuCOBOL toolchain, builds a cobc invocation
// for the session's saved file, executes it, and maps the outcome to a
// structured result. It never spawns anything when its preconditions
// fail. The call blocks for the duration of the external compile;
// interactive callers must run it off their update loop.
type Compiler struct {
	runner adapter.CompileRunner
}

// NewCompiler constructs a Compiler over the given runner.
func NewCompiler(runner adapter.CompileRunner) *Compiler {
	return &Compiler{runner: runner}
}

// Compile builds and runs the compiler invocation for the session's
// file. All failures are reported through the result, never as an
// error: every outcome leaves the caller interactive-ready.
func (c *Compiler) Compile(ctx context.Context, session *Session, opts CompileOptions) m.CompileResult {
	if session.Path() == "" {
		return m.CompileResult{
			Status:      m.CompileConfigError,
			Diagnostics: "no source file: save the buffer before compiling",
		}
	}

	req, err := BuildRequest(session.Path(), opts)
	if err != nil {
		return m.CompileResult{Status: m.CompileConfigError, Diagnostics: err.Error()}
	}

	slog.Info("compiling", "source", req.SourcePath, "output", req.OutputPath, "executable", req.Executable)

	stdout, stderr, exitCode, err := c.runner.Run(ctx, req)

	switch {
	case errors.Is(err, adapter.ErrExecutableNotFound):
		return m.CompileResult{
			Status:      m.CompileToolchainNotFound,
			Diagnostics: err.Error(),
		}
	case err != nil:
		return m.CompileResult{Status: m.CompileFailed, Diagnostics: err.Error()}
	case exitCode == 0:
		return m.CompileResult{Status: m.CompileSuccess, Output: stdout}
	default:
		return m.CompileResult{Status: m.CompileFailed, Diagnostics: stderr, Output: stdout}
	}
}

// ResolveToolchainRoot picks the toolchain location: the explicit
// override, else the GNUBASE environment variable, else a
// platform-specific default. An unrecognized platform with no override
// is a configuration error.
func ResolveToolchainRoot(override string, lookupEnv func(string) string, platform string) (string, error) {
	if override != "" {
		return override, nil
	}

	if root := lookupEnv(ToolchainEnvVar); root != "" {
		return root, nil
	}

	switch platform {
	case "windows":
		return `C:\GnuCOBOL`, nil
	case "darwin", "linux":
		return "/usr/local", nil
	default:
		return "", fmt.Errorf("unsupported operating system %q and no %s set", platform, ToolchainEnvVar)
	}
}

// BuildRequest resolves the toolchain and composes the full cobc
// invocation for source. It is pure apart from reading the environment
// via opts.
func BuildRequest(source m.Path, opts CompileOptions) (m.CompileRequest, error) {
	lookupEnv := opts.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.Getenv
	}

	platform := opts.Platform
	if platform == "" {
		platform = runtime.GOOS
	}

	root, err := ResolveToolchainRoot(opts.ToolchainRoot, lookupEnv, platform)
	if err != nil {
		return m.CompileRequest{}, err
	}

	executable := compilerName
	if platform == "windows" {
		executable += ".exe"
	}

	baseEnv := opts.BaseEnv
	if baseEnv == nil {
		baseEnv = os.Environ()
	}

	return m.CompileRequest{
		SourcePath:    source,
		OutputPath:    opts.OutputPath,
		ToolchainRoot: root,
		Executable:    filepath.Join(root, "bin", executable),
		Args:          []string{"-x", "-o", string(opts.OutputPath), string(source)},
		Env:           composeEnviron(baseEnv, root),
	}, nil
}

// composeEnviron prepends the toolchain's library and binary
// directories to the search variables, preserving existing values after
// them, and pins GNUBASE for the child process.
func composeEnviron(base []string, root string) []string {
	sep := string(os.PathListSeparator)

	libPaths := filepath.Join(root, "lib", "gnucobol") + sep + filepath.Join(root, "lib", "cobc")
	binPath := filepath.Join(root, "bin")

	env := make([]string, 0, len(base)+3)
	seen := map[string]bool{}

	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			env = append(env, kv)
			continue
		}

		switch key {
		case ToolchainEnvVar:
			continue
		case libPathVar:
			seen[libPathVar] = true

			env = append(env, libPathVar+"="+libPaths+sep+value)
		case binPathVar:
			seen[binPathVar] = true

			env = append(env, binPathVar+"="+binPath+sep+value)
		default:
			env = append(env, kv)
		}
	}

	if !seen[libPathVar] {
		env = append(env, libPathVar+"="+libPaths+sep)
	}

	if !seen[binPathVar] {
		env = append(env, binPathVar+"="+binPath+sep)
	}

	env = append(env, ToolchainEnvVar+"="+root)

	return env
}
