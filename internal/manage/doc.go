// SPDX-License-Identifier: MPL-2.0

// Package manage invokes the Django management entry point as an external
// process and runs deploy hook scripts with an embedded shell interpreter.
//
// The Invoker runs "interpreter manage.py <subcommand> --noinput" with the
// application directory as the working directory, blocking until the child
// exits. The child's stdout and stderr pass through untouched; the hook adds
// no diagnostics of its own to those streams. Exit codes are propagated
// exactly via the ExitCode type.
//
// The ScriptRunner executes configured pre/post hook fragments with mvdan/sh
// under errexit, nounset, and pipefail, so an unset variable reference or a
// failing pipeline segment fails the whole hook.
package manage
