package enginelog

import (
	"reflect"

	"github.com/JeffreyRichter/enum/enum"
)

// Level is the severity a log line is tagged with. Ordering matches the
// conventional "lower number = more severe, always shown" scheme: a logger
// configured at a given minimum level logs everything at or below it.
type Level uint8

var ELevel = Level(0)

func (Level) None() Level  { return Level(0) }
func (Level) Panic() Level { return Level(1) }
func (Level) Error() Level { return Level(2) }
func (Level) Warn() Level  { return Level(3) }
func (Level) Info() Level  { return Level(4) }
func (Level) Debug() Level { return Level(5) }

func (l Level) String() string {
	return enum.StringInt(l, reflect.TypeOf(l))
}

// ParseLevel parses a case-insensitive level name, as accepted by the
// --log-level CLI flag.
func ParseLevel(s string) (Level, error) {
	val, err := enum.Parse(reflect.TypeOf(ELevel), s, true)
	if err != nil {
		return 0, err
	}
	return val.(Level), nil
}
