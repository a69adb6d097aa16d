// Package prompt implements the terminal side of interactive decisions.
//
// It carries the yes/no precondition confirmation and the per-group
// escalation menu. Prompts answer conservatively on EOF or a cancelled
// context: confirmations fall back to their default and escalation falls
// back to skip, so an aborted operator session never blocks or merges.
package prompt
