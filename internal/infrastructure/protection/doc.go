// Package protection stores the data protection key ring with GORM and
// implements the protector on top of it.
//
// Protected payloads carry the id of the master key that sealed them, so
// rotating keys keeps older payloads readable.
package protection
