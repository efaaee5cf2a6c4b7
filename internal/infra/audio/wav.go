package audio

import (
	"encoding/binary"
	"io"
	"os"

	"safewallet/internal/domain/entity"
	"safewallet/internal/errors"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/orcaman/writerseeker"
)

const (
	wavBitDepth  = 16
	wavFormatPCM = 1
)

// WAVEncoder renders clips as 16-bit PCM RIFF/WAVE.
type WAVEncoder struct{}

// NewWAVEncoder returns the encoder used for downloads and the speaker topic.
func NewWAVEncoder() *WAVEncoder {
	return &WAVEncoder{}
}

// EncodeWAV returns the clip as an in-memory WAV file.
func (WAVEncoder) EncodeWAV(clip *entity.AudioClip) ([]byte, error) {
	var ws writerseeker.WriterSeeker
	if err := writeWAV(&ws, clip); err != nil {
		return nil, err
	}

	return io.ReadAll(ws.Reader())
}

func writeWAVFile(path string, clip *entity.AudioClip) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create wav file")
	}

	if err := writeWAV(f, clip); err != nil {
		_ = f.Close()

		return err
	}

	return errors.Wrap(f.Close(), "close wav file")
}

// writeWAV seeks back on close to patch the chunk sizes into the header.
func writeWAV(w io.WriteSeeker, clip *entity.AudioClip) error {
	channels := max(clip.Channels, 1)

	enc := wav.NewEncoder(w, clip.SampleRate, wavBitDepth, channels, wavFormatPCM)
	if err := enc.Write(intBuffer(clip, channels)); err != nil {
		return errors.Wrap(err, "encode wav samples")
	}

	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "finalize wav header")
	}

	return nil
}

func intBuffer(clip *entity.AudioClip, channels int) *goaudio.IntBuffer {
	n := len(clip.PCM) / 2
	data := make([]int, n)
	for i := range n {
		data[i] = int(int16(binary.LittleEndian.Uint16(clip.PCM[2*i:])))
	}

	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: clip.SampleRate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}
}
