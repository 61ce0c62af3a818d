package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette holds the ANSI colors of one theme
type palette struct {
	fg       string
	time     string
	id       string
	number   string
	accent   string
	yellow   string
	red      string
	redBg    string
	yellowBg string
}

var themes = map[string]palette{
	"everforest": {
		fg:       "\x1b[38;5;223m",
		time:     "\x1b[38;5;107m",
		id:       "\x1b[38;5;109m",
		number:   "\x1b[38;5;108m",
		accent:   "\x1b[38;5;208m",
		yellow:   "\x1b[38;5;179m",
		red:      "\x1b[38;5;167m",
		redBg:    "\x1b[48;5;52m",
		yellowBg: "\x1b[48;5;58m",
	},
	"gruvbox": {
		fg:       "\x1b[38;5;223m",
		time:     "\x1b[38;5;108m",
		id:       "\x1b[38;5;109m",
		number:   "\x1b[38;5;175m",
		accent:   "\x1b[38;5;214m",
		yellow:   "\x1b[38;5;214m",
		red:      "\x1b[38;5;167m",
		redBg:    "\x1b[48;5;88m",
		yellowBg: "\x1b[48;5;58m",
	},
	"plain": {},
}

var currentTheme = "everforest"

// SetTheme configures the color scheme for console log output.
// Unknown names are ignored.
func SetTheme(theme string) {
	if _, ok := themes[theme]; ok {
		currentTheme = theme
	}
}

func colors() palette {
	return themes[currentTheme]
}

func paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + colorReset
}

// identity fields get the ID color; everything else is rendered key=value
var idFields = map[string]bool{
	FieldMachineARN:   true,
	FieldExecutionARN: true,
	FieldBatchID:      true,
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  sfn  Fetched page  page=2 count=1000"
type minimalEncoder struct {
	zapcore.Encoder
	context []zapcore.Field
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	ctx := make([]zapcore.Field, len(enc.context))
	copy(ctx, enc.context)
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		context: ctx,
	}
}

// AddString and friends are reached through With(); keep those fields so
// child loggers print them too.
func (enc *minimalEncoder) AddString(key, value string) {
	enc.context = append(enc.context, zap.String(key, value))
}

func (enc *minimalEncoder) AddInt64(key string, value int64) {
	enc.context = append(enc.context, zap.Int64(key, value))
}

func (enc *minimalEncoder) AddFloat64(key string, value float64) {
	enc.context = append(enc.context, zap.Float64(key, value))
}

func (enc *minimalEncoder) AddBool(key string, value bool) {
	enc.context = append(enc.context, zap.Bool(key, value))
}

func (enc *minimalEncoder) AddReflected(key string, value interface{}) error {
	enc.context = append(enc.context, zap.Any(key, value))
	return nil
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	c := colors()
	final := buffer.NewPool().Get()

	final.AppendString(paint(c.time, ent.Time.Format("15:04:05")))

	// Level: only show for WARN/ERROR and above
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelString(ent.Level, c))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(paint(c.accent, ent.LoggerName))
	}

	final.AppendString("  ")
	final.AppendString(paint(c.fg, ent.Message))

	all := make([]zapcore.Field, 0, len(enc.context)+len(fields))
	all = append(all, enc.context...)
	all = append(all, fields...)
	if rendered := renderFields(all, c); rendered != "" {
		final.AppendString("  ")
		final.AppendString(rendered)
	}

	final.AppendString("\n")
	return final, nil
}

func levelString(level zapcore.Level, c palette) string {
	switch level {
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.WarnLevel:
		return colorBold + c.yellowBg + c.yellow + "WARN" + colorReset
	default:
		return colorBold + c.redBg + c.red + level.CapitalString() + colorReset
	}
}

// renderFields prints every field as key=value. Nothing is dropped.
func renderFields(fields []zapcore.Field, c palette) string {
	if len(fields) == 0 {
		return ""
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Type == zapcore.SkipType {
			continue
		}
		m := zapcore.NewMapObjectEncoder()
		f.AddTo(m)
		for key, value := range m.Fields {
			val := fmt.Sprintf("%v", value)
			switch {
			case idFields[key]:
				val = paint(c.id, val)
			case isNumeric(value):
				val = paint(c.number, val)
			}
			parts = append(parts, key+"="+val)
		}
	}
	return strings.Join(parts, " ")
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}
