// Fxrates is a CLI tool that parses FX rate quote emails (.msg files) from
// multiple banks and consolidates the forward, spot and central-bank rate
// tables into a single Excel workbook.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/avaropoint/fxrates/parsers/banks"
	"github.com/avaropoint/fxrates/parsers/msgfile"
)

// version is the application version.
const version = "1.0.0"

// defaultOutput is the workbook path used when neither the command line
// nor FXRATES_OUTPUT names one.
const defaultOutput = "All_Banks_FX_Parsed.xlsx"

// usage prints command-line help to stderr.
func usage() {
	fmt.Fprintf(os.Stderr, `fxrates v%s
Multi-bank FX rate email processor

Usage:
  fxrates process <msg_folder> [output.xlsx]  Parse all bank emails and write the workbook
  fxrates body    <file.msg>                  Print the extracted message body
  fxrates banks                               List supported bank codes
  fxrates help                                Show this help message

The bank code is taken from the file name: ACB.msg is parsed with the ACB
extractor. Environment: FXRATES_OUTPUT (default output path), LOG_LEVEL
(debug|info|warn|error). A .env file in the working directory is loaded
when present.

Examples:
  fxrates process ./W4_Aug_25
  fxrates process ./W4_Aug_25 rates.xlsx
  fxrates body ./W4_Aug_25/ACB.msg
`, version)
}

func main() {
	// The .env file is optional; absence is not an error.
	_ = godotenv.Load()
	initLogger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	args := os.Args[2:]

	switch cmd {
	case "help", "-h", "--help":
		usage()
	case "version", "-v", "--version":
		fmt.Println(version)
	case "banks":
		for _, code := range banks.Codes() {
			fmt.Println(code)
		}
	case "body":
		requireArg(args, "file path")
		cmdBody(args[0])
	case "process":
		requireArg(args, "msg folder")
		output := outputPath(args)
		cmdProcess(args[0], output)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

// initLogger configures the default slog logger from LOG_LEVEL.
func initLogger() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// requireArg exits with an error if the first positional argument is
// missing.
func requireArg(args []string, what string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: %s required\n", what)
		usage()
		os.Exit(1)
	}
}

// outputPath resolves the workbook path: explicit argument, then
// FXRATES_OUTPUT, then the default.
func outputPath(args []string) string {
	if len(args) >= 2 {
		return args[1]
	}
	if env := os.Getenv("FXRATES_OUTPUT"); env != "" {
		return env
	}
	return defaultOutput
}

// cmdBody prints the extracted body of a single .msg file.
func cmdBody(path string) {
	body, err := msgfile.ReadBodyFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(body)
}
