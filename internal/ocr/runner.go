package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner abstracts the external PDF toolchain (pdftotext, pdftoppm,
// tesseract) so the extraction cascade can be tested without the binaries.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// tesseract warns on every low-confidence page; keep the log readable
const stderrLogCap = 8 << 10

// toolRunner shells out to the poppler/tesseract binaries.
type toolRunner struct {
	logger *slog.Logger
}

func (r toolRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	started := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	runErr := cmd.Run()
	elapsed := time.Since(started)

	if runErr != nil {
		r.logger.Error("pdf tool failed",
			"tool", name,
			"args", strings.Join(args, " "),
			"elapsed_ms", elapsed.Milliseconds(),
			"error", runErr,
			"stderr", clipStderr(errb.String()),
		)
		return out.Bytes(), errb.Bytes(), runErr
	}

	r.logger.Debug("pdf tool ok",
		"tool", name,
		"elapsed_ms", elapsed.Milliseconds(),
		"stdout_bytes", out.Len(),
		"stderr_bytes", errb.Len(),
	)
	return out.Bytes(), errb.Bytes(), nil
}

func clipStderr(s string) string {
	if len(s) <= stderrLogCap {
		return s
	}
	return s[:stderrLogCap] + "...(truncated)"
}
