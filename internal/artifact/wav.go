package artifact

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"
)

type pcmParams struct {
	BitsPerSample int
	Rate          int
}

// parseAudioMIME reads the PCM parameters out of a raw-audio MIME type
// such as "audio/L16;codec=pcm;rate=24000". Missing or malformed
// parameters fall back to 16-bit / 24kHz.
func parseAudioMIME(mimeType string) pcmParams {
	params := pcmParams{BitsPerSample: 16, Rate: 24000}

	for _, part := range strings.Split(mimeType, ";") {
		part = strings.TrimSpace(part)
		if rate, ok := strings.CutPrefix(strings.ToLower(part), "rate="); ok {
			if v, err := strconv.Atoi(rate); err == nil {
				params.Rate = v
			}
		} else if bits, ok := strings.CutPrefix(part, "audio/L"); ok {
			if v, err := strconv.Atoi(bits); err == nil {
				params.BitsPerSample = v
			}
		}
	}

	return params
}

// encapsulateWAV wraps raw mono PCM samples in a RIFF/WAVE header so the
// browser can play the speech synthesis output directly.
func encapsulateWAV(data []byte, mimeType string) []byte {
	params := parseAudioMIME(mimeType)

	const numChannels = 1
	bytesPerSample := params.BitsPerSample / 8
	blockAlign := numChannels * bytesPerSample
	byteRate := params.Rate * blockAlign

	buf := bytes.NewBuffer(make([]byte, 0, 44+len(data)))
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(numChannels))
	binary.Write(buf, binary.LittleEndian, uint32(params.Rate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(params.BitsPerSample))
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}
