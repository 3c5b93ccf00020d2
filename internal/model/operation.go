package model

// Operation names the generation modes exposed by the API. The values
// double as the request path suffixes.
type Operation string

const (
	OpTextToImage  Operation = "text-to-image"
	OpImageToImage Operation = "image-to-image"
	OpTextToVideo  Operation = "text-to-video"
	OpImageToVideo Operation = "image-to-video"
	OpExtendVideo  Operation = "extend-video"
	OpTextToSpeech Operation = "text-to-speech"
)

// ResolutionTier values supported for video output. Only the lower tier
// may be used as the basis of a further extension.
const (
	Resolution720p  = "720p"
	Resolution1080p = "1080p"
)
