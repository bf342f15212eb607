package formdata

import "context"

// FlattenOpt bundles options for the traversal entry points. Options are
// passed variadically; the last one wins.
type FlattenOpt struct {
	Diag Diagnostics
}

// ParseOpt bundles form-submission parsing options.
type ParseOpt struct {
	Diag Diagnostics
	// Validate replaces the schema-derived validation collaborator. When nil,
	// ParseForm runs ValidateTree against the schema's Validator capabilities.
	Validate func(ctx context.Context, v any) Issues
}

func lastFlattenOpt(opts []FlattenOpt) FlattenOpt {
	var opt FlattenOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Diag == nil {
		opt.Diag = NopDiagnostics()
	}
	return opt
}

func lastParseOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Diag == nil {
		opt.Diag = NopDiagnostics()
	}
	return opt
}
