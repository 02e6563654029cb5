// Package entities defines the marker capabilities persistence hooks act on,
// together with embeddable field sets that implement them.
//
// An entity opts into a behaviour by embedding the matching field set, for
// example embedding SoftDeleteFields makes the entity SoftDeletable and the
// soft delete hook turns its deletion into an update of IsDeleted.
package entities
