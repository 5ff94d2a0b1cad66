// ABOUTME: Medical report upload command
// ABOUTME: Streams a local file to the analyzer and prints the analysis text

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/doctalk/doctalk-cli/models"
)

// Uploads above this size are rejected locally, matching the backend limit.
const maxReportSize = 10 << 20

func (r *Runner) analyzeReport(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	if info.Size() > maxReportSize {
		return fmt.Errorf("report is %d bytes; the limit is 10MB", info.Size())
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(r.out, "Scanning report...")
	result, err := r.client.AnalyzeReport(ctx, filepath.Base(path), file)
	if err != nil {
		if !r.cfg.DemoFallback {
			return err
		}
		demo := models.DemoAnalysis(filepath.Base(path))
		result = &demo
		fmt.Fprintln(r.out, "(backend unreachable, showing demo analysis)")
	}

	fmt.Fprintln(r.out, "\nAnalysis Complete")
	fmt.Fprintln(r.out, result.Analysis)
	return nil
}
