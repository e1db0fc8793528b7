package framework

import (
	"errors"
	"strings"
)

// reformatError drops the "Error Trace" block that testify puts at the start of its assertion
// messages, since the trace only points into harness code.
func reformatError(err error) error {
	var kept []string
	inTrace := false
	for _, line := range strings.Split(err.Error(), "\n") {
		trimmed := strings.TrimSpace(line)
		label := strings.TrimSpace(strings.SplitN(strings.TrimPrefix(line, "\t"), "\t", 2)[0])
		if label == "Error Trace:" {
			inTrace = true
			continue
		}
		if inTrace && label == "" && trimmed != "" {
			continue
		}
		inTrace = false
		if trimmed == "" && len(kept) == 0 {
			continue
		}
		kept = append(kept, strings.TrimPrefix(line, "\t"))
	}
	if len(kept) == 0 {
		return err
	}
	return errors.New(strings.Join(kept, "\n"))
}
