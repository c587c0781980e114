// Package artifact holds generated code artifacts and packages them for
// delivery.
//
// An Artifact is one generated or improved piece of source code with its
// language tag. Delivery has two modes: a single in-memory file buffer
// (SingleFile/ImprovedFile) and a zipped project bundle of main file plus
// README (Packager.BundleProject).
//
// Artifact creation is owned by the codegen orchestrator; everything else
// receives artifacts by value and never mutates them.
package artifact
