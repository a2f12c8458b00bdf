// Package integrationtests exercises the application end to end: manifests
// on disk, compiled-in modules, and resolution through the app.
package integrationtests
