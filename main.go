package main

import (
	"fmt"
	"io"
	"os"

	"minigrep/internal/app"
	"minigrep/internal/config"
	"minigrep/internal/model"
	"minigrep/internal/output"
	"minigrep/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(stdout io.Writer, currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "minigrep",
		Repository: "minigrep",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Fprintf(stdout, "A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Fprintln(stdout, "Download it from https://github.com/minigrep/minigrep/releases")
	} else {
		fmt.Fprintf(stdout, "You are using the latest version: %s\n", currentVer)
	}
}

func newLogger(stderr io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, config.OSLookup))
}

// run executes one invocation and returns the process exit status.
// args[0] is the program name.
func run(args []string, stdout, stderr io.Writer, lookup config.LookupFunc) int {
	name := "minigrep"
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: minigrep [options] [--] QUERY FILE\n\n")
		fmt.Fprintf(stderr, "minigrep prints every line of FILE that contains QUERY.\n")
		fmt.Fprintf(stderr, "Set IGNORE_CASE (to any value) for a case-insensitive search.\n")
		fmt.Fprintf(stderr, "Put -- before a QUERY that starts with a dash.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  minigrep to poem.txt                # Lines containing \"to\"\n")
		fmt.Fprintf(stderr, "  IGNORE_CASE=1 minigrep to poem.txt  # Same, ignoring case\n")
		fmt.Fprintf(stderr, "  minigrep -n frog poem.txt           # Prefix line numbers\n")
		fmt.Fprintf(stderr, "  minigrep -- -fast poem.txt          # Query starting with a dash\n")
		fmt.Fprintf(stderr, "  minigrep --json frog poem.txt       # Output matches as JSON\n")
		fmt.Fprintf(stderr, "  minigrep --tui frog poem.txt        # Browse matches interactively\n")
	}

	lineNumberFlag := flags.BoolP("line-number", "n", false, "Prefix each line with its line number")
	countFlag := flags.BoolP("count", "c", false, "Print only the number of matching lines")
	jsonFlag := flags.BoolP("json", "j", false, "Output matches as JSON")
	colorFlag := flags.String("color", string(output.ColorNever), "Highlight matches: auto, always or never")
	tuiFlag := flags.BoolP("tui", "t", false, "Browse matches interactively")
	verboseFlag := flags.BoolP("verbose", "v", false, "Log diagnostics to stderr")
	versionFlag := flags.BoolP("version", "V", false, "Print version information")
	updateFlag := flags.BoolP("update", "u", false, "Check for latest version")
	helpFlag := flags.BoolP("help", "h", false, "Show this help message")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		fmt.Fprintf(stderr, "Run with --help for usage; put -- before a QUERY that starts with a dash.\n")
		return 2
	}

	if *helpFlag {
		flags.Usage()
		return 0
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "minigrep version %s\n", model.Version)
		return 0
	}

	if *updateFlag {
		checkUpdate(stdout, model.Version)
		return 0
	}

	logger := newLogger(stderr, *verboseFlag)

	cfg, err := config.Build(flags.Args(), lookup)
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		return 1
	}

	colorMode, err := output.ParseColorMode(*colorFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		return 1
	}

	if *tuiFlag {
		return runTuiMode(cfg, stdout, stderr)
	}

	var printer output.Printer
	switch {
	case *jsonFlag:
		printer = output.JSON{}
	case *countFlag:
		printer = output.Count{}
	default:
		plain := output.Plain{LineNumbers: *lineNumberFlag}
		if colorMode != output.ColorNever {
			plain.Highlighter = output.NewHighlighter(stdout, colorMode)
		}
		printer = plain
	}

	a := app.New(cfg,
		app.WithOutput(stdout),
		app.WithPrinter(printer),
		app.WithLogger(logger),
	)
	if err := a.Run(); err != nil {
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return 1
	}
	return 0
}

func runTuiMode(cfg model.Config, stdout, stderr io.Writer) int {
	m := tui.InitialModel(cfg, output.NewHighlighter(stdout, output.ColorAuto))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(stdout))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return 1
	}
	return 0
}
