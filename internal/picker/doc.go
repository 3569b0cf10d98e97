// Package picker holds the branch picker's item model and the machinery
// that keeps it in sync with repository state.
//
// The model is an ordered sequence of rows: fixed command rows first, then
// the local branch section and the remote branch section, each sorted by
// commit recency. Successful mutations are applied as targeted patches
// (insert, rename, remove) instead of forcing a full rebuild; full rebuilds
// are driven by the Scheduler on explicit refresh or timer expiry.
package picker
