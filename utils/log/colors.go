package log

import (
	"bytes"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// colorEncoder wraps the default console encoder so that ANSI escape
// sequences carried inside log fields survive encoding instead of being
// escaped to text.
type colorEncoder struct {
	*zapcore.EncoderConfig
	zapcore.Encoder
}

func NewColor(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return colorEncoder{
		EncoderConfig: &cfg,
		Encoder:       zapcore.NewConsoleEncoder(cfg),
	}
}

func (c colorEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	buff, err := c.Encoder.EncodeEntry(ent, fields)
	if err != nil {
		return nil, err
	}

	unescaped := bytes.ReplaceAll(buff.Bytes(), []byte("\\u001b"), []byte("\u001b"))
	buff.Reset()
	buff.AppendString(string(unescaped))
	return buff, nil
}

func (c colorEncoder) Clone() zapcore.Encoder {
	return colorEncoder{
		EncoderConfig: c.EncoderConfig,
		Encoder:       c.Encoder.Clone(),
	}
}
