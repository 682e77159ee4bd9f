// Package imaging implements the image side of phototable assembly.
//
// It finds candidate image files in a folder, verifies that each one decodes,
// fits its pixel size into a display bounding box and converts formats a word
// processor cannot embed into ones it can.
//
// Key Types:
//
// - Image: a decoded source image with its raw bytes and pixel size
// - Size: a display size in inches
// - Normalized: embeddable image bytes, possibly backed by a temporary file
//
// Main Functions:
//
// - ListCandidates: Lists image files in a folder in lexicographic order
// - Load: Reads and fully decodes an image file
// - Fit: Scales a pixel size into a bounding box preserving the aspect ratio
// - Normalize: Produces embeddable bytes, converting or downsampling if needed
package imaging
