package imaging

// Package imaging implements bitmap decoding and the two-stage scale-to-fit
// policy: decoded images are first capped to a fixed bounding box, then
// rescaled to the current display area on every resize. The capped bitmap is
// always derived from the original, never from a previous fit result.
