// Package gfx rasterizes shapes, text and camera-projected wireframes onto a 128×128
// RGB565 panel.
//
// Drawing is immediate: every call writes pixels straight through a hal.FrameSink and
// returns. There is no framebuffer, no retained scene and no error path; off-screen
// pixels are clipped at Plot and degenerate input (zero-length lines, zero radius,
// short vertex chains, dash steps <= 0, vertices behind the camera) degrades to a
// minimal well-defined drawing.
//
// The line, circle and fill paths use integer arithmetic only, so the pixel output is
// reproducible bit for bit. Only the 3D projection uses floating point.
package gfx
