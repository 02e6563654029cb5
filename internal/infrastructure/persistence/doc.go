// Package persistence implements the save pipeline on top of GORM.
//
// UnitOfWork stages entity changes, runs the pre-action hooks of a
// hooks.Engine, writes every change in one transaction and then runs the
// post-action hooks. Repositories read through the unit of work so queries
// issued inside UnitOfWork.Transaction see uncommitted changes.
package persistence
