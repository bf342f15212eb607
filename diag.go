package formdata

// Diagnostics is the injected observability collaborator. Traversal code may
// call it for informational/warning output; correctness never depends on
// whether diagnostics are captured.
type Diagnostics interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Debugf(string, ...any) {}
func (nopDiagnostics) Warnf(string, ...any)  {}

// NopDiagnostics returns a Diagnostics that discards everything.
func NopDiagnostics() Diagnostics { return nopDiagnostics{} }

// FuncDiagnostics adapts two printf-style functions into a Diagnostics.
// Either function may be nil.
func FuncDiagnostics(debugf, warnf func(format string, args ...any)) Diagnostics {
	return funcDiagnostics{debugf: debugf, warnf: warnf}
}

type funcDiagnostics struct {
	debugf func(string, ...any)
	warnf  func(string, ...any)
}

func (d funcDiagnostics) Debugf(format string, args ...any) {
	if d.debugf != nil {
		d.debugf(format, args...)
	}
}

func (d funcDiagnostics) Warnf(format string, args ...any) {
	if d.warnf != nil {
		d.warnf(format, args...)
	}
}
