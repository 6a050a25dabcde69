// process.go runs the batch pipeline: enumerate .msg files, extract each
// body, parse it with the bank's extractor, merge the results, and write
// the consolidated workbook. One bank failing never aborts the batch.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/avaropoint/fxrates/parsers/banks"
	"github.com/avaropoint/fxrates/parsers/fxquote"
	"github.com/avaropoint/fxrates/parsers/msgfile"
)

func cmdProcess(folder, output string) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", folder, err)
		os.Exit(1)
	}

	merger := fxquote.NewMerger()
	processed := 0

	// ReadDir returns entries sorted by filename; that enumeration order
	// fixes the bank concatenation order and therefore the output row
	// numbering.
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".msg") {
			continue
		}
		path := filepath.Join(folder, entry.Name())
		code := strings.ToUpper(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))

		extractor := banks.Lookup(code)
		if extractor == nil {
			slog.Warn("no extractor registered, skipping", "bank", code, "file", entry.Name())
			continue
		}

		body, err := msgfile.ReadBodyFile(path)
		if err != nil {
			slog.Error("body extraction failed", "bank", code, "error", err)
			continue
		}

		forward, spot, central, err := parseBank(extractor, body)
		if err != nil {
			slog.Error("bank extraction failed", "bank", code, "error", err)
			continue
		}

		merger.Add(forward, spot, central)
		processed++
		slog.Info("bank parsed", "bank", code,
			"forward", len(forward), "spot", len(spot), "central", len(central))
	}

	if processed == 0 {
		slog.Error("no banks were processed, not writing an output file", "folder", folder)
		os.Exit(1)
	}

	forward, spot, central := merger.Merge()
	if err := fxquote.SaveWorkbook(output, forward, spot, central); err != nil {
		slog.Error("writing workbook failed", "path", output, "error", err)
		os.Exit(1)
	}
	slog.Info("workbook written", "path", output, "banks", processed,
		"forward_rows", len(forward), "spot_rows", len(spot), "central_rows", len(central))
}

// parseBank guards one extractor call. Extractors are written not to
// panic, but an unexpected input shape in one bank's mail must never take
// down the whole batch.
func parseBank(e banks.Extractor, text string) (forward fxquote.ForwardTable, spot fxquote.SpotTable, central fxquote.CentralBankTable, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()
	forward, spot, central = e.Parse(text)
	return forward, spot, central, nil
}
