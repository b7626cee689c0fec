package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/logrusorgru/aurora"

	"numpadd/internal/pkg/logg"
)

type TimeNanosecond time.Time

func (j *TimeNanosecond) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*j = TimeNanosecond(time.Unix(0, v))
	return nil
}

type Entry struct {
	Ts     TimeNanosecond `json:"ts"`
	Caller string         `json:"caller"`
	Msg    string         `json:"msg"`
	Level  int            `json:"level"`
}

func unpack(data []byte) (Entry, error) {
	var v Entry
	err := json.Unmarshal(data, &v)
	return v, err
}

func gray(v uint8) aurora.Color {
	if v > 23 {
		v = 23
	}
	return aurora.Color(232+v) << 16
}

// r, g, b 0<=v<=5
func color(r, g, b uint8) aurora.Color {
	return aurora.Color(16+36*r+6*g+b) << 16
}

// prepareString renders one log entry for the terminal, empty string for
// entries above the requested level.
func prepareString(msg Entry, au aurora.Aurora, logLevel int) string {
	if msg.Level > logLevel {
		return ""
	}

	var msgColor aurora.Color
	switch msg.Level {
	case logg.ErrorLvl:
		msgColor = color(5, 1, 1)
	case logg.WarningLvl:
		msgColor = color(5, 5, 1)
	case logg.InfoLvl:
		msgColor = gray(18)
	case logg.KeysLvl:
		msgColor = gray(15)
	case logg.DebugLvl:
		msgColor = gray(9)
	}

	t := time.Time(msg.Ts)
	timestamp := fmt.Sprintf("[%s]", au.Reset(t.Format("15:04:05.000")).Colorize(color(1, 1, 5)).String())
	m := au.Reset(msg.Msg).Colorize(msgColor).String()

	if logLevel >= logg.DebugLvl {
		return fmt.Sprintf("%s %s (%s)", timestamp, m, msg.Caller)
	}
	return fmt.Sprintf("%s %s", timestamp, m)
}

// printLogs drains logg.Messages until the channel closes.
func printLogs(nocolor bool, logLevel int) {
	au := aurora.NewAurora(!nocolor)
	for data := range logg.Messages {
		msg, err := unpack(data)
		if err != nil {
			fmt.Printf("%s\n", string(data))
			continue
		}
		if s := prepareString(msg, au, logLevel); s != "" {
			fmt.Printf("%s\n", s)
		}
	}
}
