// SPDX-License-Identifier: MPL-2.0

// Package deploy builds and runs the post-install step pipeline.
//
// A deploy is an ordered list of steps executed strictly sequentially with
// fail-fast semantics: the first step that exits non-zero (or cannot start)
// stops the pipeline, and its exit code becomes the process exit code. The
// fixed order is pre-hook, migrate, collectstatic, post-hook; migrate always
// strictly precedes collectstatic and nothing runs concurrently or is
// retried.
//
// Preflight validates the environment before any step runs: every variable
// in require_env must be set and non-empty, and the application directory
// must exist and be enterable. Preflight failures abort the deploy before
// the first subcommand is invoked.
package deploy
