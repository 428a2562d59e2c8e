package appmgr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// execTransport issues requests through an external curl-compatible
// program instead of the built-in HTTP client. The program's stdout and
// stderr are captured as buffers; the HTTP status code is recovered from
// a write-out trailer appended after the body.
type execTransport struct {
	prog string
}

// NewExecTransport returns a Transport that shells out to prog, which must
// accept curl's -s, -X, -H, -d, -w, and --connect-timeout options.
func NewExecTransport(prog string) Transport {
	return &execTransport{prog: prog}
}

// statusTrailer separates the response body from the status code line
const statusTrailer = "\n%{http_code}"

// Do runs the client program once and parses its output
func (t *execTransport) Do(ctx context.Context, method, reqURL string, body []byte) (*Response, error) {
	args := []string{
		"-s", "-S",
		"--connect-timeout", strconv.Itoa(int(connectTimeout.Seconds())),
		"-X", method,
		"-H", "Content-Type: application/json",
		"-w", statusTrailer,
	}
	if body != nil {
		args = append(args, "-d", "@-")
	}
	args = append(args, reqURL)

	cmd := exec.CommandContext(ctx, t.prog, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if body != nil {
		cmd.Stdin = bytes.NewReader(body)
	}

	log.Debug().Str("prog", t.prog).Strs("args", args).Msg("running http client program")

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s failed: %s: %w", t.prog, msg, err)
		}
		return nil, fmt.Errorf("%s failed: %w", t.prog, err)
	}

	out := stdout.String()
	idx := strings.LastIndexByte(out, '\n')
	if idx < 0 {
		return nil, fmt.Errorf("%s produced no status trailer", t.prog)
	}
	status, err := strconv.Atoi(strings.TrimSpace(out[idx+1:]))
	if err != nil {
		return nil, fmt.Errorf("%s produced a malformed status trailer %q", t.prog, out[idx+1:])
	}

	return &Response{StatusCode: status, Body: []byte(out[:idx])}, nil
}
