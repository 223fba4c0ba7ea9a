// Package identifier derives stable, namespaced identifiers for workflows,
// resources and triggers.
//
// Identifiers are RFC 4122 version 5 UUIDs computed from the project
// namespace and a human readable label:
//
//	d := identifier.New(namespace)
//	id := d.WorkflowID("order-workflow")
//
// The same label under the same namespace always yields the same identifier,
// on any machine, in any run. A Deriver holds no mutable state and can be
// shared between goroutines.
package identifier
