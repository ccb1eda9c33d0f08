package glmath_test

import (
	"fmt"

	"gltest/glmath"
)

func ExampleMat4_Mul() {
	// Scale first, then translate.
	model := glmath.Mat4Translate(1, 2, 3).Mul(glmath.Mat4Scale(2, 2, 2))
	fmt.Println(model.MulVec(glmath.V4(3, 3, 3, 1)))
	// Output: [7 8 9 1]
}

func ExampleVec3_Cross() {
	x := glmath.V3(1, 0, 0)
	y := glmath.V3(0, 1, 0)
	fmt.Println(x.Cross(y), y.Cross(x))
	// Output: [0 0 1] [0 0 -1]
}

func ExampleMat4_Floats() {
	m := glmath.Mat4Translate(4, 5, 6)
	f := m.Floats()
	fmt.Println(f[12:15])
	// Output: [4 5 6]
}

func ExampleMat4LookAt() {
	view := glmath.Mat4LookAt(glmath.V3(0, 0, 5), glmath.V3(0, 0, 0), glmath.V3(0, 1, 0))
	fmt.Println(view.TransformPoint(glmath.V3(0, 0, 0)))
	// Output: [0 0 -5]
}
