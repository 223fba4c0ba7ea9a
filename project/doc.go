// Package project loads and stores the project configuration file that
// carries the project namespace (`.para/project.json` by default).
//
// The file may be JSON or YAML, chosen by extension, and is accessed through
// afs so it can live on any supported storage:
//
//	{"projectId": "0d4b1c9e-54a7-4b36-9a26-8f3c2f1f3d55", "name": "shop"}
//
// projectId may reference environment variables as ${env.NAME}.
package project
