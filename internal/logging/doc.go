// Package logging assembles the slog loggers used by aafkit.
//
// A console handler renders one header line per record (time, level,
// component, file and run) followed by the few fields worth reading; JSON
// output is available for machines. Every invocation also gets a run log,
// a JSON file under <log_dir>/runs that TeeLogger feeds alongside the
// console, pruned after logging.retention_days.
//
// WarnWithContext and ErrorWithContext enforce event_type, error_hint and
// impact on warnings so each one tells the user what happened and what to
// do about it.
package logging
