// Package cli implements the faberc driver's reusable entry point, split
// from cmd/faberc's thin main() the way the teacher splits cmd/funxy/main.go
// from pkg/cli/entry.go. Three subcommands (SPEC_FULL.md 1.1): compile (one
// file, one target), check (analyze only), targets (list backends).
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/faber/internal/analyzer"
	"github.com/funvibe/faber/internal/codegen"
	_ "github.com/funvibe/faber/internal/codegen/cpp"
	_ "github.com/funvibe/faber/internal/codegen/python"
	_ "github.com/funvibe/faber/internal/codegen/rust"
	_ "github.com/funvibe/faber/internal/codegen/typescript"
	"github.com/funvibe/faber/internal/codegen/wire"
	_ "github.com/funvibe/faber/internal/codegen/zig"
	"github.com/funvibe/faber/internal/config"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/modules"
	"github.com/funvibe/faber/internal/parser"
	"github.com/funvibe/faber/internal/pipeline"
)

// Main is faberc's reusable entry point, called from cmd/faberc's main()
// under a panic-recovery wrapper (see Run). Returns a process exit code.
func Main() int {
	return dispatch(os.Args)
}

// Run executes args the way Main would, recovering from any internal
// panic into a clean error message instead of a raw stack trace, unless
// FABER_DEBUG is set (matching the teacher's DEBUG-env-var re-panic
// convention in cmd/funxy/main.go's main()).
func Run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("FABER_DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "faberc: internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			code = 2
		}
	}()
	return dispatch(os.Args)
}

func dispatch(args []string) int {
	if len(args) < 2 {
		printUsage()
		return 2
	}

	switch args[1] {
	case "targets":
		return handleTargets()
	case "check":
		return handleCheck(args[2:])
	case "compile":
		return handleCompile(args[2:])
	case "-h", "--help", "help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "faberc: unknown command %q\n\n", args[1])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage:
  faberc compile <file> -t <target> [-o <output>] [--all]
  faberc check <file> [--test-mode]
  faberc targets`)
}

// handleTargets lists every codegen backend registered via the blank
// imports above (the side-effect registration idiom internal/codegen.go
// documents, mirroring the parser's prefixParseFns/infixParseFns style).
func handleTargets() int {
	for _, t := range codegen.Default().Targets() {
		fmt.Println(t.String())
	}
	return 0
}

// handleCheck runs tokenize -> parse -> analyze (no codegen stage) and
// prints every diagnostic produced, exiting 1 if any is an error.
func handleCheck(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "faberc check: missing source file")
		return 2
	}
	path := args[0]
	for _, a := range args[1:] {
		if a == "--test-mode" {
			config.IsTestMode = true
		}
	}

	ctx, err := runPipeline(path, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "faberc check: %v\n", err)
		return 2
	}

	printDiagnostics(ctx.Diagnostics)
	if ctx.HasErrors() {
		return 1
	}
	fmt.Printf("%s: ok\n", path)
	return 0
}

// handleCompile runs the full pipeline for one file against one (or, with
// --all, every) codegen target, writing generated source to -o or stdout.
func handleCompile(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "faberc compile: missing source file")
		return 2
	}

	path := args[0]
	target := ""
	output := ""
	all := false
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-t", "--target":
			if i+1 < len(args) {
				target = args[i+1]
				i++
			}
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "--all":
			all = true
		}
	}

	targets := []codegen.Target{}
	if all {
		targets = codegen.Default().Targets()
	} else {
		if target == "" {
			if cfg := loadProjectConfig(path); cfg != nil && len(cfg.Targets) > 0 {
				target = cfg.Targets[0]
			}
		}
		if target == "" {
			fmt.Fprintln(os.Stderr, "faberc compile: no target given (-t, or --all, or .faber.yaml targets:)")
			return 2
		}
		t, ok := codegen.ParseTarget(target)
		if !ok {
			fmt.Fprintf(os.Stderr, "faberc compile: unknown target %q\n", target)
			return 2
		}
		targets = []codegen.Target{t}
	}

	exitCode := 0
	for _, t := range targets {
		ctx, err := runPipeline(path, t.String())
		if err != nil {
			fmt.Fprintf(os.Stderr, "faberc compile: %v\n", err)
			return 2
		}
		printDiagnostics(ctx.Diagnostics)
		if ctx.HasErrors() {
			exitCode = 1
			continue
		}

		dest := output
		if dest == "" || len(targets) > 1 {
			dest = defaultOutputPath(path, t, output)
		}
		if err := os.WriteFile(dest, []byte(ctx.Output), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "faberc compile: writing %s: %v\n", dest, err)
			return 2
		}
		lineCount := strings.Count(ctx.Output, "\n") + 1
		fmt.Printf("%s -> %s (%s, %s)\n", path, dest,
			humanize.Bytes(uint64(len(ctx.Output))), humanize.Comma(int64(lineCount))+" lines")
		if len(ctx.Headers) > 0 {
			fmt.Printf("  headers: %s\n", strings.Join(ctx.Headers, ", "))
		}
		if err := writeInterchangeSchema(ctx, dest); err != nil {
			fmt.Fprintf(os.Stderr, "faberc compile: %v\n", err)
			exitCode = 1
		}
	}
	return exitCode
}

// writeInterchangeSchema emits a sibling .proto file next to dest for every
// genus in the compiled program that opted into internal/codegen/wire's
// interchange marker. A no-op when none did.
func writeInterchangeSchema(ctx *pipeline.Context, dest string) error {
	structs := wire.Collect(ctx.Program)
	if len(structs) == 0 {
		return nil
	}
	base := config.TrimSourceExt(filepath.Base(dest))
	protoName := base + ".proto"
	text, err := wire.GenerateSchema(protoName, structs)
	if err != nil {
		return fmt.Errorf("generating wire schema: %w", err)
	}
	protoPath := filepath.Join(filepath.Dir(dest), protoName)
	if err := os.WriteFile(protoPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", protoPath, err)
	}
	fmt.Printf("  schema: %s (%d message(s))\n", protoPath, len(structs))
	return nil
}

// defaultOutputPath mirrors the source's base name into the target
// language's conventional extension, used when -o is omitted or --all
// compiles to more than one target at once.
func defaultOutputPath(sourcePath string, target codegen.Target, explicit string) string {
	base := config.TrimSourceExt(filepath.Base(sourcePath))
	if explicit != "" {
		base = config.TrimSourceExt(filepath.Base(explicit))
	}
	dir := filepath.Dir(sourcePath)
	ext := map[codegen.Target]string{
		codegen.CPP:        ".cpp",
		codegen.Rust:       ".rs",
		codegen.TypeScript: ".ts",
		codegen.Python:     ".py",
		codegen.Zig:        ".zig",
	}[target]
	return filepath.Join(dir, base+"."+target.String()+ext)
}

// runPipeline wires tokenize -> parse -> analyze (-> generate, if target is
// non-empty) through internal/pipeline, sharing one modules.Context so
// local imports resolve and cache across the run (section 4.4).
func runPipeline(path, target string) (*pipeline.Context, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	moduleCtx := modules.NewContext(filepath.Dir(absPath), modules.NewMemoryCache(), parser.ParseProgram, analyzer.Analyze)

	ctx := pipeline.NewContext(absPath, string(source))
	ctx.ModuleCtx = moduleCtx
	ctx.Target = target

	p := pipeline.New(
		parser.Processor{},
		analyzer.Processor{ModuleCtx: moduleCtx},
		codegen.Processor{},
	)
	return p.Run(ctx), nil
}

// loadProjectConfig looks for .faber.yaml starting at sourcePath's
// directory; returns nil (not an error) if none is found or it fails to
// parse, since project config is an optional convenience, never required.
func loadProjectConfig(sourcePath string) *config.ProjectConfig {
	dir := filepath.Dir(sourcePath)
	found, err := config.FindProjectConfig(dir)
	if err != nil || found == "" {
		return nil
	}
	cfg, err := config.LoadProjectConfig(found)
	if err != nil {
		return nil
	}
	return cfg
}

// printDiagnostics renders every diagnostic to stderr, colored red/yellow
// for error/warning when stderr is a real terminal (section 7's CLI
// surface), matching the teacher's isatty.IsTerminal-or-IsCygwinTerminal
// check (internal/evaluator/builtins_term.go).
func printDiagnostics(diags []*diagnostics.Diagnostic) {
	color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	sorted := make([]*diagnostics.Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}
		if sorted[i].Position.Line != sorted[j].Position.Line {
			return sorted[i].Position.Line < sorted[j].Position.Line
		}
		return sorted[i].Position.Column < sorted[j].Position.Column
	})

	for _, d := range sorted {
		if !color {
			fmt.Fprintln(os.Stderr, d.String())
			continue
		}
		code := "\033[31merror\033[0m"
		if d.Severity == diagnostics.SeverityWarning {
			code = "\033[33mwarning\033[0m"
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", code, d.String())
	}
}
