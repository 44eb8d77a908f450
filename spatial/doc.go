// Package spatial implements the 6-D spatial vector algebra used by
// rigid-body dynamics algorithms: twists (MotionVector), wrenches
// (ForceVector) and rigid frame changes (Transform).
//
// A spatial vector stores its linear 3-block first and its angular 3-block
// second. Motions and forces share that layout but transform under dual
// laws; the Transform methods and the forceset/motionset subpackages keep
// the two laws apart.
//
// The types here are plain values over mgl64 storage. Nothing in this
// package allocates on the operation paths, and raw-storage views
// (MotionAt, ForceAt) let callers run the same algebra over columns of a
// larger matrix without copying into intermediate structures.
package spatial
