// Package cmderror classifies failures coming back from external commands
// and the AUR transport so handlers can print an actionable message.
//
// The tools raur shells out to report failure through free-form text on
// stderr plus a non-zero exit code, so classification is necessarily
// string-based. ErrorChainInspector additionally honors typed errors that
// implement the Is*Error() predicates, letting wrapped errors self-classify
// before the string fallback runs.
package cmderror
