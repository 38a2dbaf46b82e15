package strategy

import "github.com/backmassage/trackplan/mediaformat"

// Capabilities describes what the downstream encoder surface can accept.
// It is supplied per call by the encoder-configuration collaborator.
type Capabilities struct {
	// FloatKeyFrameInterval reports whether the encoder accepts fractional
	// keyframe intervals. When false, intervals are rounded up to whole
	// seconds before emission.
	FloatKeyFrameInterval bool
}

// Strategy decides the output format for one track. Implementations return
// a freshly allocated format and never mutate the input.
type Strategy interface {
	CreateOutputFormat(in mediaformat.Format, caps Capabilities) (mediaformat.Format, error)
}

// PassThrough is a Strategy that keeps the track as-is: the output format is
// a copy of the input, signalling the pipeline to carry the track over
// without re-encoding.
type PassThrough struct{}

func (PassThrough) CreateOutputFormat(in mediaformat.Format, _ Capabilities) (mediaformat.Format, error) {
	return in.Copy(), nil
}
