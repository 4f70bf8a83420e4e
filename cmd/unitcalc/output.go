package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/born-ml/numeric/internal/config"
)

var errorColor = color.New(color.FgRed, color.Bold)

// output renders labelled results. Numbers go through a locale-aware
// printer when a locale is configured.
type output struct {
	w     io.Writer
	num   *message.Printer
	prec  int
	key   *color.Color
	value *color.Color
}

func newOutput(w io.Writer, cfg config.Config, tty bool) *output {
	o := &output{
		w:     w,
		prec:  cfg.Precision,
		key:   color.New(color.FgCyan),
		value: color.New(color.Bold),
	}
	if tag := cfg.Tag(); tag != language.Und {
		o.num = message.NewPrinter(tag)
	}

	enabled := cfg.Color == "on" || (cfg.Color == "auto" && tty)
	for _, c := range []*color.Color{o.key, o.value} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return o
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// field prints "name: value" with values aligned in one column.
func (o *output) field(name string, v any) {
	o.key.Fprintf(o.w, "%-14s ", name+":")
	o.value.Fprintln(o.w, o.format(v))
}

func (o *output) format(v any) string {
	switch x := v.(type) {
	case float32:
		return o.float(float64(x), 32)
	case float64:
		return o.float(x, 64)
	case int8, int16, int32, int64, int, uint8, uint16, uint32, uint64, uint:
		if o.num != nil {
			return o.num.Sprintf("%d", x)
		}
		return fmt.Sprint(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func (o *output) float(f float64, bits int) string {
	if o.num != nil {
		if o.prec >= 0 {
			return o.num.Sprintf(fmt.Sprintf("%%.%df", o.prec), f)
		}
		return o.num.Sprintf("%v", f)
	}
	if o.prec >= 0 {
		return strconv.FormatFloat(f, 'f', o.prec, bits)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// encoded prints the msgpack encoding of v as hex.
func (o *output) encoded(v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("msgpack: %w", err)
	}
	o.field("msgpack", hex.EncodeToString(data))
	return nil
}
