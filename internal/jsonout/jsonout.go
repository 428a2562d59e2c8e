// Package jsonout pretty-prints JSON response bodies for display.
package jsonout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Fprint writes data to w indented for readability. A body that is not
// valid JSON is written as-is with a diagnostic on the same writer; a
// formatting failure is never fatal.
func Fprint(w io.Writer, data []byte) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		fmt.Fprintf(w, "(response is not valid JSON: %v)\n", err)
		w.Write(data)
		fmt.Fprintln(w)
		return
	}

	buf.WriteByte('\n')
	w.Write(buf.Bytes())
}
