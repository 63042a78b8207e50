package convert

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"generic-caster/introspect"
	"generic-caster/utils"
)

var (
	ErrIncompatible = errors.New("no compatible conversion between types")
	ErrOutOfRange   = errors.New("value does not fit the target type")
)

// Compatible converts a scalar value to the target type with all
// coercion families enabled.
func Compatible(value any, target reflect.Type) (any, error) {
	return CompatibleAs(value, target, CategoryAll)
}

// CompatibleAs converts a scalar value to the target type, allowing only
// the given coercion families. The identity cases (nil value, nil or
// empty-interface target, already-assignable value) always pass.
func CompatibleAs(value any, target reflect.Type, allowed CategoryEnum) (any, error) {
	if value == nil {
		return nil, nil
	}
	if target == nil || (target.Kind() == reflect.Interface && target.NumMethod() == 0) {
		return value, nil
	}

	vt := reflect.TypeOf(value)
	if vt == target || vt.AssignableTo(target) {
		return value, nil
	}

	pair := ConversionPair{basicKind(vt), basicKind(target)}
	cat := categoryOf(pair, vt, target)
	if cat == CategoryNone || allowed&cat == 0 {
		// named scalar of the same kind is a plain cast
		if vt.ConvertibleTo(target) && vt.Kind() == target.Kind() {
			return reflect.ValueOf(value).Convert(target).Interface(), nil
		}
		return nil, fmt.Errorf("%w: %s -> %s", ErrIncompatible, vt, target)
	}

	out, err := apply(cat, pair, value, vt, target)
	if err != nil {
		return nil, fmt.Errorf("converting %s to %s: %w", vt, target, err)
	}
	return out, nil
}

// basicKind classifies by reflect kind so named scalar types take part
// in the numeric families; the exact time types win over their kinds.
func basicKind(t reflect.Type) introspect.KindEnum {
	switch t {
	case reflect.TypeOf(time.Time{}):
		return introspect.KindTime
	case reflect.TypeOf(time.Duration(0)):
		return introspect.KindDuration
	}
	switch t.Kind() {
	case reflect.Int:
		return introspect.KindInt
	case reflect.Int8:
		return introspect.KindInt8
	case reflect.Int16:
		return introspect.KindInt16
	case reflect.Int32:
		return introspect.KindInt32
	case reflect.Int64:
		return introspect.KindInt64
	case reflect.Uint:
		return introspect.KindUint
	case reflect.Uint8:
		return introspect.KindUint8
	case reflect.Uint16:
		return introspect.KindUint16
	case reflect.Uint32:
		return introspect.KindUint32
	case reflect.Uint64:
		return introspect.KindUint64
	case reflect.Float32:
		return introspect.KindFloat32
	case reflect.Float64:
		return introspect.KindFloat64
	case reflect.Bool:
		return introspect.KindBool
	case reflect.String:
		return introspect.KindString
	default:
		return 0
	}
}

func categoryOf(pair ConversionPair, vt, target reflect.Type) CategoryEnum {
	src, dst := pair.From, pair.To

	// enum participation first: a registered or string-convention enum
	// endpoint turns a string pair into an enum conversion
	if introspect.IsEnum(target) && src == introspect.KindString {
		return CategoryEnumString
	}
	if introspect.IsEnum(vt) && dst == introspect.KindString {
		return CategoryEnumString
	}
	if introspect.IsEnum(vt) && introspect.IsEnum(target) {
		return CategoryEnumString
	}

	switch {
	case src.IsNumber() && dst.IsNumber():
		if _, ok := safePairs[pair]; ok {
			return CategorySafeNumber
		}
		return CategoryUnsafeNumber
	case src.IsNumber() && dst == introspect.KindString,
		src == introspect.KindString && dst.IsNumber():
		return CategoryTextNumber
	case src.IsInteger() && dst == introspect.KindBool,
		src == introspect.KindBool && dst.IsInteger():
		return CategoryNumericBool
	case src == introspect.KindString && dst == introspect.KindBool,
		src == introspect.KindBool && dst == introspect.KindString:
		return CategoryTextualBool
	case src == introspect.KindString && dst == introspect.KindTime,
		src == introspect.KindTime && dst == introspect.KindString:
		return CategoryDatetime
	case src.IsInteger() && dst == introspect.KindTime,
		src == introspect.KindTime && dst.IsInteger():
		return CategoryTimestamp
	case src == introspect.KindString && dst == introspect.KindDuration,
		src == introspect.KindDuration && dst == introspect.KindString:
		return CategoryDuration
	case src.IsInteger() && dst == introspect.KindDuration,
		src == introspect.KindDuration && dst.IsInteger():
		return CategoryNanoseconds
	case src.IsFloat() && dst == introspect.KindDuration,
		src == introspect.KindDuration && dst.IsFloat():
		return CategorySeconds
	default:
		return CategoryNone
	}
}

func apply(cat CategoryEnum, pair ConversionPair, value any, vt, target reflect.Type) (any, error) {
	rv := reflect.ValueOf(value)

	switch cat {
	case CategorySafeNumber, CategoryUnsafeNumber:
		return numeric(rv, pair, target)

	case CategoryTextNumber:
		if pair.From == introspect.KindString {
			return parseNumber(rv.String(), pair.To, target)
		}
		return formatNumber(rv, pair.From, target)

	case CategoryNumericBool:
		if pair.To == introspect.KindBool {
			return asTarget(reflect.ValueOf(intOf(rv, pair.From) != 0), target)
		}
		n := int64(0)
		if rv.Bool() {
			n = 1
		}
		return numeric(reflect.ValueOf(n), ConversionPair{introspect.KindInt64, pair.To}, target)

	case CategoryTextualBool:
		if pair.To == introspect.KindBool {
			return parseBool(rv.String(), target)
		}
		return asTarget(reflect.ValueOf(strconv.FormatBool(rv.Bool())), target)

	case CategoryDatetime:
		if pair.To == introspect.KindTime {
			ts, err := time.Parse(time.RFC3339Nano, rv.String())
			if err != nil {
				return nil, err
			}
			return ts, nil
		}
		return asTarget(reflect.ValueOf(value.(time.Time).Format(time.RFC3339Nano)), target)

	case CategoryTimestamp:
		if pair.To == introspect.KindTime {
			return time.Unix(intOf(rv, pair.From), 0).UTC(), nil
		}
		return numeric(reflect.ValueOf(value.(time.Time).Unix()), ConversionPair{introspect.KindInt64, pair.To}, target)

	case CategoryDuration:
		if pair.To == introspect.KindDuration {
			d, err := time.ParseDuration(rv.String())
			if err != nil {
				return nil, err
			}
			return d, nil
		}
		return asTarget(reflect.ValueOf(value.(time.Duration).String()), target)

	case CategoryNanoseconds:
		if pair.To == introspect.KindDuration {
			return time.Duration(intOf(rv, pair.From)), nil
		}
		return numeric(reflect.ValueOf(int64(value.(time.Duration))), ConversionPair{introspect.KindInt64, pair.To}, target)

	case CategorySeconds:
		if pair.To == introspect.KindDuration {
			return time.Duration(rv.Float() * float64(time.Second)), nil
		}
		return asTarget(reflect.ValueOf(value.(time.Duration).Seconds()), target)

	case CategoryEnumString:
		return enumConvert(value, vt, target)

	default:
		return nil, ErrIncompatible
	}
}

func enumConvert(value any, vt, target reflect.Type) (any, error) {
	if introspect.IsEnum(target) {
		name := value
		if introspect.IsEnum(vt) {
			n, ok := introspect.EnumName(value)
			if !ok {
				return nil, fmt.Errorf("%w: unnamed enum value %v", ErrIncompatible, value)
			}
			name = n
		}
		s, ok := name.(string)
		if !ok {
			s = reflect.ValueOf(name).String()
		}
		return introspect.EnumFromName(target, s)
	}
	name, ok := introspect.EnumName(value)
	if !ok {
		return nil, fmt.Errorf("%w: unnamed enum value %v", ErrIncompatible, value)
	}
	return asTarget(reflect.ValueOf(name), target)
}

// numeric performs a guarded numeric conversion into the target type.
func numeric(rv reflect.Value, pair ConversionPair, target reflect.Type) (any, error) {
	out := reflect.New(target).Elem()
	dst := pair.To

	switch {
	case dst.IsSigned():
		var x int64
		switch {
		case pair.From.IsSigned():
			x = rv.Int()
		case pair.From.IsUnsigned():
			u := rv.Uint()
			if u > math.MaxInt64 {
				return nil, ErrOutOfRange
			}
			x = int64(u)
		default:
			f := rv.Float()
			if !utils.IsInRange(float64(math.MinInt64), f, float64(math.MaxInt64)) {
				return nil, ErrOutOfRange
			}
			x = int64(f)
		}
		if out.OverflowInt(x) {
			return nil, ErrOutOfRange
		}
		out.SetInt(x)

	case dst.IsUnsigned():
		var x uint64
		switch {
		case pair.From.IsSigned():
			i := rv.Int()
			if i < 0 {
				return nil, ErrOutOfRange
			}
			x = uint64(i)
		case pair.From.IsUnsigned():
			x = rv.Uint()
		default:
			f := rv.Float()
			if !utils.IsInRange(0, f, float64(math.MaxUint64)) {
				return nil, ErrOutOfRange
			}
			x = uint64(f)
		}
		if out.OverflowUint(x) {
			return nil, ErrOutOfRange
		}
		out.SetUint(x)

	case dst.IsFloat():
		var f float64
		switch {
		case pair.From.IsSigned():
			f = float64(rv.Int())
		case pair.From.IsUnsigned():
			f = float64(rv.Uint())
		default:
			f = rv.Float()
		}
		if out.OverflowFloat(f) {
			return nil, ErrOutOfRange
		}
		out.SetFloat(f)

	default:
		return nil, ErrIncompatible
	}
	return out.Interface(), nil
}

func intOf(rv reflect.Value, kind introspect.KindEnum) int64 {
	if kind.IsUnsigned() {
		return int64(rv.Uint())
	}
	return rv.Int()
}

func parseNumber(s string, dst introspect.KindEnum, target reflect.Type) (any, error) {
	switch {
	case dst.IsSigned():
		x, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, err
		}
		return numeric(reflect.ValueOf(x), ConversionPair{introspect.KindInt64, dst}, target)
	case dst.IsUnsigned():
		x, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, err
		}
		return numeric(reflect.ValueOf(x), ConversionPair{introspect.KindUint64, dst}, target)
	default:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, err
		}
		return numeric(reflect.ValueOf(f), ConversionPair{introspect.KindFloat64, dst}, target)
	}
}

func formatNumber(rv reflect.Value, src introspect.KindEnum, target reflect.Type) (any, error) {
	var s string
	switch {
	case src.IsSigned():
		s = strconv.FormatInt(rv.Int(), 10)
	case src.IsUnsigned():
		s = strconv.FormatUint(rv.Uint(), 10)
	default:
		s = strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	}
	return asTarget(reflect.ValueOf(s), target)
}

func parseBool(s string, target reflect.Type) (any, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return asTarget(reflect.ValueOf(true), target)
	case "false", "no", "off", "0":
		return asTarget(reflect.ValueOf(false), target)
	default:
		return nil, fmt.Errorf("%w: %q is not a boolean", ErrIncompatible, s)
	}
}

// asTarget casts the produced value onto a possibly named target type.
func asTarget(v reflect.Value, target reflect.Type) (any, error) {
	if v.Type() == target {
		return v.Interface(), nil
	}
	if v.Type().ConvertibleTo(target) {
		return v.Convert(target).Interface(), nil
	}
	return nil, ErrIncompatible
}
