package beatmap

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const timingPointFields = 8

func parseTime(field string) (int, error) {
	t, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if nil != err {
		return 0, err
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, errors.Errorf("time %q is not finite", field)
	}
	return int(math.Round(t)), nil
}

// ParseTimingPoint reads a [TimingPoints] line:
// time,beatlength,meter,sampleset,sampleindex,volume,uninherited,effects
func ParseTimingPoint(line string) (*Object, error) {
	fields := strings.Split(line, ",")
	if len(fields) != timingPointFields {
		return nil, errors.Wrapf(ErrFormat, "timing point %q has %d fields, expected %d", line, len(fields), timingPointFields)
	}

	time, err := parseTime(fields[0])
	if nil != err {
		return nil, errors.Wrapf(ErrFormat, "timing point %q: time: %v", line, err)
	}
	beatlength, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if nil != err || math.IsNaN(beatlength) || math.IsInf(beatlength, 0) {
		return nil, errors.Wrapf(ErrFormat, "timing point %q: invalid beatlength", line)
	}

	ints := make([]int, 0, timingPointFields-2)
	for i, field := range fields[2:] {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if nil != err {
			return nil, errors.Wrapf(ErrFormat, "timing point %q: field %d: %v", line, i+2, err)
		}
		ints = append(ints, v)
	}

	o := &Object{
		Time:        time,
		Beatlength:  beatlength,
		Meter:       ints[0],
		SampleSet:   ints[1],
		SampleIndex: ints[2],
		Volume:      ints[3],
		Uninherited: ints[4],
		Effects:     ints[5],
		Line:        line,
	}
	switch o.Uninherited {
	case 1:
		o.Kind = Uninherited
	case 0:
		o.Kind = Inherited
	default:
		return nil, errors.Wrapf(ErrFormat, "timing point %q: uninherited must be 0 or 1", line)
	}
	return o, nil
}

// ParseHitObject only reads the start time, the third field.
func ParseHitObject(line string) (*Object, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return nil, errors.Wrapf(ErrFormat, "hit object %q has %d fields", line, len(fields))
	}
	time, err := parseTime(fields[2])
	if nil != err {
		return nil, errors.Wrapf(ErrFormat, "hit object %q: time: %v", line, err)
	}
	return &Object{Kind: Hit, Time: time}, nil
}

func FormatBeatlength(b float64) string {
	return strconv.FormatFloat(b, 'f', -1, 64)
}

func FormatTimingPoint(o *Object) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(o.Time))
	sb.WriteByte(',')
	sb.WriteString(FormatBeatlength(o.Beatlength))
	for _, v := range [...]int{o.Meter, o.SampleSet, o.SampleIndex, o.Volume, o.Uninherited, o.Effects} {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
