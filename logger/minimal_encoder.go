package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Everforest palette
const (
	colorReset  = "\x1b[0m"
	colorBold   = "\x1b[1m"
	colorFg     = "\x1b[38;5;223m"
	colorGreen  = "\x1b[38;5;108m"
	colorDeep   = "\x1b[38;5;65m"
	colorOrange = "\x1b[38;5;208m"
	colorYellow = "\x1b[38;5;179m"
	colorRed    = "\x1b[38;5;167m"
	colorGray   = "\x1b[38;5;245m"
)

var bufferPool = buffer.NewPool()

// minimalEncoder is a calm, compact console encoder:
//
//	WARN  driver  Destination stale  family=expr path=parsing/expr.go
//
// No timestamps and no caller; the level is shown only when it is not INFO.
// Every field is printed as key=value: context fields (sorted) first, then
// the entry's fields in call order.
type minimalEncoder struct {
	// context fields added through With
	*zapcore.MapObjectEncoder
	color bool
}

func newMinimalEncoder(color bool) *minimalEncoder {
	return &minimalEncoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		color:            color,
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := newMinimalEncoder(enc.color)
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := bufferPool.Get()

	if ent.Level != zapcore.InfoLevel {
		line.AppendString(enc.levelString(ent.Level))
		line.AppendString("  ")
	}

	if ent.LoggerName != "" {
		line.AppendString(enc.paint(componentColor(ent.LoggerName), ent.LoggerName))
		line.AppendString("  ")
	}

	line.AppendString(enc.paint(colorFg, ent.Message))

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		enc.appendField(line, k, enc.Fields[k])
	}

	for _, f := range fields {
		// Encode each field on its own so call order is kept
		m := zapcore.NewMapObjectEncoder()
		f.AddTo(m)
		fieldKeys := make([]string, 0, len(m.Fields))
		for k := range m.Fields {
			fieldKeys = append(fieldKeys, k)
		}
		sort.Strings(fieldKeys)
		for _, k := range fieldKeys {
			enc.appendField(line, k, m.Fields[k])
		}
	}

	line.AppendString("\n")
	return line, nil
}

func (enc *minimalEncoder) appendField(line *buffer.Buffer, key string, value any) {
	// cockroachdb errors add a multi-line stack under <key>Verbose
	if strings.HasSuffix(key, "Verbose") {
		return
	}
	line.AppendString("  ")
	line.AppendString(enc.paint(colorGray, key+"="))
	line.AppendString(enc.paint(valueColor(key), formatValue(value)))
}

func (enc *minimalEncoder) paint(color, s string) string {
	if !enc.color {
		return s
	}
	return color + s + colorReset
}

func (enc *minimalEncoder) levelString(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return enc.paint(colorGray, "DEBUG")
	case zapcore.WarnLevel:
		return enc.paint(colorBold+colorYellow, "WARN")
	default:
		return enc.paint(colorBold+colorRed, level.CapitalString())
	}
}

// componentColor picks a stable color per logger name
func componentColor(name string) string {
	hash := 0
	for _, c := range name {
		hash += int(c)
	}
	switch hash % 3 {
	case 0:
		return colorGreen
	case 1:
		return colorDeep
	default:
		return colorOrange
	}
}

func valueColor(key string) string {
	switch key {
	case FieldFamily, FieldShape:
		return colorGreen
	case FieldError:
		return colorRed
	case FieldShapes, FieldBytes:
		return colorOrange
	default:
		return colorFg
	}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, p := range val {
			parts[i] = formatValue(p)
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return fmt.Sprint(val)
	}
}
