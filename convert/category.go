// Package convert performs compatible scalar conversions at realization
// time: numeric widening/narrowing, textual and numeric representations
// of booleans, times, durations and enums. Which coercion families apply
// is selected with a CategoryEnum bitmask; CategoryAll is the default
// used by the caster entry points.
package convert

import "generic-caster/introspect"

type CategoryEnum int

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // int, uint, float without precision loss
	CategoryUnsafeNumber                          // int, uint, float with precision loss
	CategoryTextNumber                            // int, uint, float <-> string: textual number representation
	CategoryNumericBool                           // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                           // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                              // string(RFC3339Nano) <-> time.Time: textual date and time representation
	CategoryTimestamp                             // int(Unix seconds) <-> time.Time: Unix timestamp representation
	CategoryDuration                              // string(2h45m) <-> time.Duration: textual duration representation
	CategoryNanoseconds                           // int(nanoseconds) <-> time.Duration: numerical (integer) duration representation
	CategorySeconds                               // float(seconds) <-> time.Duration: numerical (floating-point) duration representation
	CategoryEnumString                            // string <-> enum: textual representation of an enum type (uses registered name tables or IsValid/string methods)

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

type ConversionPair struct {
	From, To introspect.KindEnum
}

// safePairs enumerates the numeric conversions that can never lose
// precision. Anything numeric outside this set is CategoryUnsafeNumber.
var safePairs = safeNumberConversionPairs()

func safeNumberConversionPairs() map[ConversionPair]struct{} {
	k := func(from, to introspect.KindEnum) ConversionPair { return ConversionPair{from, to} }
	return map[ConversionPair]struct{}{
		k(introspect.KindInt, introspect.KindInt):   {}, // int can be any wide from 32 upto 64
		k(introspect.KindInt, introspect.KindInt64): {},

		k(introspect.KindInt8, introspect.KindInt):     {}, // int8 can be safely converted to any signed int
		k(introspect.KindInt8, introspect.KindInt8):    {},
		k(introspect.KindInt8, introspect.KindInt16):   {},
		k(introspect.KindInt8, introspect.KindInt32):   {},
		k(introspect.KindInt8, introspect.KindInt64):   {},
		k(introspect.KindInt8, introspect.KindFloat32): {},
		k(introspect.KindInt8, introspect.KindFloat64): {},

		k(introspect.KindInt16, introspect.KindInt):     {},
		k(introspect.KindInt16, introspect.KindInt16):   {}, // int16 omitting narrowing to int8
		k(introspect.KindInt16, introspect.KindInt32):   {},
		k(introspect.KindInt16, introspect.KindInt64):   {},
		k(introspect.KindInt16, introspect.KindFloat32): {},
		k(introspect.KindInt16, introspect.KindFloat64): {},

		k(introspect.KindInt32, introspect.KindInt):     {},
		k(introspect.KindInt32, introspect.KindInt32):   {}, // int32 omitting narrowing to int8/16
		k(introspect.KindInt32, introspect.KindInt64):   {},
		k(introspect.KindInt32, introspect.KindFloat64): {}, // int32 is wider than float32 mantissa

		k(introspect.KindInt64, introspect.KindInt64): {}, // int64 is the widest signed integer type

		k(introspect.KindUint, introspect.KindUint):   {}, // uint can be any wide from 32 upto 64
		k(introspect.KindUint, introspect.KindUint64): {},

		k(introspect.KindUint8, introspect.KindUint):    {}, // uint8 can be safely converted to any unsigned int
		k(introspect.KindUint8, introspect.KindUint8):   {},
		k(introspect.KindUint8, introspect.KindUint16):  {},
		k(introspect.KindUint8, introspect.KindUint32):  {},
		k(introspect.KindUint8, introspect.KindUint64):  {},
		k(introspect.KindUint8, introspect.KindInt):     {}, // also uint8 can be converted to any wider signed int
		k(introspect.KindUint8, introspect.KindInt16):   {},
		k(introspect.KindUint8, introspect.KindInt32):   {},
		k(introspect.KindUint8, introspect.KindInt64):   {},
		k(introspect.KindUint8, introspect.KindFloat32): {},
		k(introspect.KindUint8, introspect.KindFloat64): {},

		k(introspect.KindUint16, introspect.KindUint):    {},
		k(introspect.KindUint16, introspect.KindUint16):  {}, // uint16 omitting narrowing to uint8
		k(introspect.KindUint16, introspect.KindUint32):  {},
		k(introspect.KindUint16, introspect.KindUint64):  {},
		k(introspect.KindUint16, introspect.KindInt):     {}, // also uint16 can be converted to any wider signed int
		k(introspect.KindUint16, introspect.KindInt32):   {},
		k(introspect.KindUint16, introspect.KindInt64):   {},
		k(introspect.KindUint16, introspect.KindFloat32): {},
		k(introspect.KindUint16, introspect.KindFloat64): {},

		k(introspect.KindUint32, introspect.KindUint32):  {},
		k(introspect.KindUint32, introspect.KindUint64):  {}, // uint32 omitting narrowing to uint8/16
		k(introspect.KindUint32, introspect.KindInt64):   {}, // also only int64 is wide enough to hold uint32
		k(introspect.KindUint32, introspect.KindFloat64): {}, // uint32 is wider than float32 mantissa

		k(introspect.KindUint64, introspect.KindUint64): {}, // uint64 is the widest unsigned integer type

		k(introspect.KindFloat32, introspect.KindFloat32): {},
		k(introspect.KindFloat32, introspect.KindFloat64): {},

		k(introspect.KindFloat64, introspect.KindFloat64): {},
	}
}
