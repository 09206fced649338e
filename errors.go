package tensor

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ygrebnov/errorc"
)

const Namespace = "tensor"

var (
	ErrInvalidAxis   = errors.New(Namespace + ": axis out of range")
	ErrShapeMismatch = errors.New(Namespace + ": shape mismatch")
	ErrNilView       = errors.New(Namespace + ": nil view")
	ErrNilFunc       = errors.New(Namespace + ": nil axis function")
)

func invalidAxis(axis, rank int) error {
	return errorc.With(
		ErrInvalidAxis,
		errorc.String("axis", strconv.Itoa(axis)),
		errorc.String("rank", strconv.Itoa(rank)),
	)
}

func shapeMismatch(src, dst Shape) error {
	return errorc.With(
		ErrShapeMismatch,
		errorc.String("src", fmt.Sprint([]int(src))),
		errorc.String("dst", fmt.Sprint([]int(dst))),
	)
}
