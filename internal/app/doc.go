// Package app implements the application services: accounts and the sample
// task management, together with the event handlers they rely on.
package app
