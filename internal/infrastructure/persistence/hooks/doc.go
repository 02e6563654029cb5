// Package hooks implements the hook engine of the save pipeline.
//
// Pre-action hooks run after entries are staged and before anything reaches
// the database, post-action hooks run once the transaction committed. A hook
// is selected by the state an entry had before the first hook ran, so a soft
// delete hook that rewrites an entry into an update does not trigger update
// hooks.
package hooks
