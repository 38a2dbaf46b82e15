package strategy

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/backmassage/trackplan/internal/metrics"
	"github.com/backmassage/trackplan/mediaformat"
	"github.com/backmassage/trackplan/resize"
)

// Defaults applied by NewBuilder.
const (
	// DefaultFrameRate is the target frame rate when the caller sets none.
	DefaultFrameRate = 30
	// DefaultKeyFrameInterval is the target keyframe spacing in seconds.
	DefaultKeyFrameInterval = 3.0
)

// BitRateUnknown marks a bit rate the caller did not supply; the strategy
// estimates one from the output geometry instead.
const BitRateUnknown int64 = math.MinInt64

// Options holds a frozen video strategy configuration. Build one through a
// Builder; it is immutable and safe to share afterwards.
type Options struct {
	resizer          *resize.MultiResizer
	frameRate        int
	bitRate          int64
	keyFrameInterval float64
	logger           zerolog.Logger
}

// Builder accumulates video strategy settings and freezes them into Options.
type Builder struct {
	resizer          *resize.MultiResizer
	frameRate        int
	bitRate          int64
	keyFrameInterval float64
	logger           zerolog.Logger
}

// NewBuilder returns a Builder with an empty resizer chain and the default
// frame rate, keyframe interval, and unknown bit rate.
func NewBuilder() *Builder {
	return &Builder{
		resizer:          resize.NewMultiResizer(),
		frameRate:        DefaultFrameRate,
		bitRate:          BitRateUnknown,
		keyFrameInterval: DefaultKeyFrameInterval,
		logger:           zerolog.Nop(),
	}
}

// Exact returns a Builder preloaded with an ExactResizer for the two target
// dimensions.
func Exact(a, b int) *Builder {
	return NewBuilder().AddResizer(resize.NewExactResizer(a, b))
}

// Fraction returns a Builder preloaded with a FractionResizer for the given
// downscale fraction.
func Fraction(fraction float64) *Builder {
	return NewBuilder().AddResizer(resize.NewFractionResizer(fraction))
}

// AtMost returns a Builder preloaded with an AtMostResizer capping the
// minor dimension.
func AtMost(minorCap int) *Builder {
	return NewBuilder().AddResizer(resize.NewAtMostResizer(minorCap))
}

// AtMostWithMajor returns a Builder preloaded with an AtMostResizer capping
// both dimensions.
func AtMostWithMajor(minorCap, majorCap int) *Builder {
	return NewBuilder().AddResizer(resize.NewAtMostResizerWithMajor(minorCap, majorCap))
}

// AddResizer appends a policy to the resizer chain. Policies run in the
// order they were added.
func (b *Builder) AddResizer(r resize.Resizer) *Builder {
	b.resizer.Add(r)
	return b
}

// BitRate sets the target bit rate in bits per second. Leave it at
// BitRateUnknown to have the strategy estimate one.
func (b *Builder) BitRate(bitRate int64) *Builder {
	b.bitRate = bitRate
	return b
}

// FrameRate sets the target frame rate. The output rate never exceeds the
// input rate when that information is available.
func (b *Builder) FrameRate(frameRate int) *Builder {
	b.frameRate = frameRate
	return b
}

// KeyFrameInterval sets the target spacing between keyframes in seconds.
func (b *Builder) KeyFrameInterval(seconds float64) *Builder {
	b.keyFrameInterval = seconds
	return b
}

// Logger sets the logger used by the decision procedure. Defaults to a
// no-op logger.
func (b *Builder) Logger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// Options freezes the accumulated settings.
func (b *Builder) Options() Options {
	return Options{
		resizer:          b.resizer,
		frameRate:        b.frameRate,
		bitRate:          b.bitRate,
		keyFrameInterval: b.keyFrameInterval,
		logger:           b.logger,
	}
}

// Build returns the video strategy for the accumulated settings.
func (b *Builder) Build() *VideoStrategy {
	return NewVideoStrategy(b.Options())
}

// VideoStrategy converts video tracks to AVC at a negotiated size, frame
// rate, keyframe interval, and bit rate. The input and output aspect ratio
// always match.
type VideoStrategy struct {
	opts Options
}

// NewVideoStrategy returns a strategy for the given frozen options.
func NewVideoStrategy(opts Options) *VideoStrategy {
	if opts.resizer == nil {
		opts.resizer = resize.NewMultiResizer()
	}
	return &VideoStrategy{opts: opts}
}

// CreateOutputFormat computes the output track format for one input track.
//
// Flow:
//  1. Validate input and check whether the codec already matches
//  2. Resolve the output extent through the resizer chain
//  3. Negotiate frame rate (never above the input rate)
//  4. Read the input keyframe interval
//  5. Short-circuit with ErrAlreadyCompressed when no axis would improve
//  6. Emit the populated output format
//
// Chain or validation failures return ErrUnavailable.
func (s *VideoStrategy) CreateOutputFormat(in mediaformat.Format, caps Capabilities) (mediaformat.Format, error) {
	// --- 1. Input validation and type check ---
	if err := mediaformat.ValidateVideo(in); err != nil {
		metrics.RecordDecision(metrics.OutcomeUnavailable)
		return nil, unavailable(err)
	}
	mime, _ := in.GetString(mediaformat.KeyMime)
	typeDone := mime == mediaformat.MimeTypeVideoAVC

	// --- 2. Output size ---
	inWidth, _ := in.GetInt(mediaformat.KeyWidth)
	inHeight, _ := in.GetInt(mediaformat.KeyHeight)
	inSize := resize.NewExactSize(inWidth, inHeight)
	outSize, err := s.opts.resizer.OutputSize(inSize)
	if err != nil {
		metrics.RecordDecision(metrics.OutcomeUnavailable)
		return nil, unavailable(err)
	}
	// Reapply the input's orientation to the orientation-agnostic chain
	// result, unless the chain preserved exact labels.
	var outWidth, outHeight int
	if exact, ok := outSize.(resize.ExactSize); ok {
		outWidth, outHeight = exact.Width(), exact.Height()
	} else if inWidth >= inHeight {
		outWidth, outHeight = outSize.Major(), outSize.Minor()
	} else {
		outWidth, outHeight = outSize.Minor(), outSize.Major()
	}
	s.opts.logger.Debug().
		Int("in_width", inWidth).Int("in_height", inHeight).
		Int("out_width", outWidth).Int("out_height", outHeight).
		Msg("resolved output size")
	// Compared against the chain result, not the corrected width/height.
	sizeDone := inSize.Minor() <= outSize.Minor()

	// --- 3. Frame rate: never above the input rate ---
	inFrameRate := -1
	outFrameRate := s.opts.frameRate
	if v, ok := in.GetInt(mediaformat.KeyFrameRate); ok {
		inFrameRate = v
		outFrameRate = min(inFrameRate, s.opts.frameRate)
	}
	frameRateDone := inFrameRate <= outFrameRate

	// --- 4. Keyframe interval ---
	inKeyFrameInterval := -1.0
	if v, ok := in.GetFloat(mediaformat.KeyKeyFrameInterval); ok {
		inKeyFrameInterval = v
	}
	frameIntervalDone := inKeyFrameInterval >= s.opts.keyFrameInterval

	// --- 5. Skip decision ---
	if typeDone && sizeDone && frameRateDone && frameIntervalDone {
		s.opts.logger.Info().
			Int("minor", inSize.Minor()).
			Int("frame_rate", inFrameRate).
			Float64("keyframe_interval", inKeyFrameInterval).
			Msg("input already compressed enough, skipping transcode")
		metrics.RecordDecision(metrics.OutcomeAlreadyCompressed)
		return nil, alreadyCompressed(fmt.Sprintf(
			"minor %d <= %d, frame rate %d <= %d, keyframe interval %v >= %v",
			inSize.Minor(), outSize.Minor(),
			inFrameRate, outFrameRate,
			inKeyFrameInterval, s.opts.keyFrameInterval))
	}

	// --- 6. Emission ---
	out := mediaformat.NewVideoFormat(mediaformat.MimeTypeVideoAVC, outWidth, outHeight)
	out.SetInt(mediaformat.KeyFrameRate, outFrameRate)
	if caps.FloatKeyFrameInterval {
		out.SetFloat(mediaformat.KeyKeyFrameInterval, s.opts.keyFrameInterval)
	} else {
		out.SetInt(mediaformat.KeyKeyFrameInterval, int(math.Ceil(s.opts.keyFrameInterval)))
	}
	out.SetInt(mediaformat.KeyColorFormat, mediaformat.ColorFormatSurface)
	bitRate := s.opts.bitRate
	if bitRate == BitRateUnknown {
		bitRate = EstimateBitRate(outWidth, outHeight, outFrameRate)
	}
	out.SetInt(mediaformat.KeyBitRate, int(bitRate))
	metrics.RecordDecision(metrics.OutcomeFormat)
	return out, nil
}
