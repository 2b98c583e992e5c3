// Package shell provides the subprocess capability the orchestration layers
// depend on. Callers hold the Runner interface so tests can substitute a
// fake; the production Executor streams subprocess output to configurable
// writers and surfaces exit codes in wrapped errors.
package shell
