// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package life

import "github.com/dalzilio/ddbench/internal/diag"

// Diagnostics collects the timings and intermediate sizes of a run. It is
// passed by pointer in Options and may be nil.
type Diagnostics = diag.Diagnostics
