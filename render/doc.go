// Package render is a small software renderer driven by glmath transforms.
//
// It exists to exercise the model/view/projection chain end to end: every mesh
// vertex goes through proj·view·model, is divided by w, and lands on a Target.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Target.
//
// Clipping is trivial: a triangle is dropped when any vertex has w <= 0 or falls
// outside the depth range. Rasterization can be split into horizontal bands that
// run in parallel (see Renderer.SetWorkers).
package render
