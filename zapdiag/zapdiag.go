// Package zapdiag adapts a zap logger to the formdata Diagnostics interface.
package zapdiag

import (
	formdata "github.com/Abyrd9/zod-form-data"
	"go.uber.org/zap"
)

// New wraps logger as a Diagnostics sink. Debugf maps to the logger's Debug
// level and Warnf to Warn, so traversal chatter stays invisible under the
// usual production configuration.
func New(logger *zap.Logger) formdata.Diagnostics {
	s := logger.Sugar()
	return formdata.FuncDiagnostics(s.Debugf, s.Warnf)
}
