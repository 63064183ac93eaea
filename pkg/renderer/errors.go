package renderer

import "errors"

var (
	// ErrInvalidCamera is returned when a CameraConfig cannot produce a usable camera
	ErrInvalidCamera = errors.New("invalid camera configuration")

	// ErrInvalidSampling is returned for non-positive samples or depth
	ErrInvalidSampling = errors.New("invalid sampling configuration")

	// ErrBufferSize is returned when pixel data does not match the image dimensions
	ErrBufferSize = errors.New("pixel buffer size mismatch")

	// ErrComponents is returned for a channel count outside 1..4
	ErrComponents = errors.New("unsupported component count")

	// ErrInterrupted is returned when a render is cancelled before completion
	ErrInterrupted = errors.New("render interrupted")
)
