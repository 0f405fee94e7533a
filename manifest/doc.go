// Package manifest decodes YAML project manifests into dependency graphs.
//
// A manifest names tasks and the tasks each one depends on, plus optional
// executor settings:
//
//	name: release
//	settings:
//	  workers: 4
//	  continue_on_error: false
//	  approx_iterations: 200
//	tasks:
//	  - id: compile
//	  - id: test
//	    depends_on: [compile]
//
// Decoding is strict: unknown keys are rejected. Validate checks task ids,
// references and settings; Graph builds a depgraph.Graph[string] with edges
// in file order, so discovery order (and therefore every analysis result)
// follows the manifest.
//
// Manifests are inputs only; this package never writes them back.
package manifest
