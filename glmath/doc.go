// Package glmath provides the fixed-size float32 vectors and the 4x4 matrix used to
// build the model/view/projection chain of a real-time renderer.
//
// Vectors are plain arrays (Vec3, Vec4), so v[i] reads and writes a component and an
// out-of-range index panics. Mat4 is column-major: m[col][row], and m[c] is a whole
// column. Flattened, entry (col,row) lives at offset col*4+row, which is the layout
// OpenGL-style APIs expect for uniform uploads.
//
// Typical use:
//
//	model := glmath.Mat4Translate(1, 2, 3).Mul(glmath.Mat4Scale(2, 2, 2))
//	view := glmath.Mat4LookAt(eye, center, up)
//	proj := glmath.Mat4Perspective(fovY, aspect, 0.1, 100)
//	clip := proj.Mul(view).Mul(model).MulVec(glmath.V4(x, y, z, 1))
//
// All values are independent copies; nothing here keeps mutable global state.
//
// Preconditions:
//
// Mat4Perspective panics when aspect is zero or zNear equals zFar. Mat4Ortho panics on
// an empty volume. Normalize on a zero vector and Mat4LookAt with up parallel to the
// view direction are not checked and produce non-finite components.
package glmath
