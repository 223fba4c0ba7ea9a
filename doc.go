// Package paraid derives stable identifiers for the workflows, resources and
// triggers of a project.
//
// The project namespace is read once, when the Service is created, from the
// project file (`.para/project.json` by default). Creation fails if the
// namespace is absent or malformed, so a constructed Service can always
// derive identifiers:
//
//	srv, err := paraid.New(ctx)
//	if err != nil {
//		return err
//	}
//	id := srv.WorkflowID("order-workflow")
//
// For derivation alone, without project files, see package identifier.
package paraid
