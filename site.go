package inject

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Site is a source location an operation was requested from.
// Intended to be used in telemetry.
type Site struct {
	File     string
	Function string
	Line     int
}

func (s Site) String() string {
	if s.File == "" {
		return "<unknown>"
	}

	return fmt.Sprintf("%s:%d", filepath.Base(s.File), s.Line)
}

// caller returns Site of the function skip frames above its caller.
func caller(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{}
	}

	site := Site{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = fn.Name()
	}

	return site
}
