// Package pagination holds the state machine behind a page-navigation control.
//
// The package contains:
//   - Config and State: the consumer-supplied configuration and the control's own page coordinates
//   - Reconcile: the pure function that folds a configuration change into State
//   - Controller: the navigation handlers (size change, page entry, step forward/backward),
//     their enablement gates, and the display text derived from State
//   - Emitter: the single change notification fired after every accepted navigation
//   - Snapshot: serializable metadata for the current page
//
// The controller never stores items. The consumer owns the collection and loads
// the page it is told about through the change notification.
package pagination
