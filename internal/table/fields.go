package table

import "github.com/kitedesk/kitedesk/internal/model"

// Field identifies one sortable/displayable column of a Tick.
type Field string

const (
	FieldSymbol        Field = "symbol"
	FieldExchange      Field = "exchange"
	FieldCMP           Field = "cmp"
	FieldW52High       Field = "w52_high"
	FieldW52Low        Field = "w52_low"
	FieldDFL           Field = "dfl"
	FieldDFH           Field = "dfh"
	FieldDayLow        Field = "day_low"
	FieldDayHigh       Field = "day_high"
	FieldDFDL          Field = "dfdl"
	FieldDFDH          Field = "dfdh"
	FieldBuyers        Field = "buyers"
	FieldSellers       Field = "sellers"
	FieldBSR           Field = "bsr"
	FieldChange        Field = "change"
	FieldVolume        Field = "volume"
	FieldLastTradeTime Field = "last_trade_time"
)

type valueKind int

const (
	kindAbsent valueKind = iota
	kindNumber
	kindString
)

// value is the sortable representation of one field of one record.
type value struct {
	kind valueKind
	num  float64
	str  string
}

func numValue(v *float64) value {
	if v == nil {
		return value{kind: kindAbsent}
	}
	return value{kind: kindNumber, num: *v}
}

func strValue(s string) value {
	if s == "" {
		return value{kind: kindAbsent}
	}
	return value{kind: kindString, str: s}
}

// fieldValue extracts the sortable value of a field. Unrecognized fields
// are absent, so every record compares equal and keeps its order.
func fieldValue(t model.Tick, f Field) value {
	switch f {
	case FieldSymbol:
		return strValue(t.Symbol)
	case FieldExchange:
		return strValue(t.Exchange)
	case FieldCMP:
		return numValue(t.CMP)
	case FieldW52High:
		return numValue(t.W52High)
	case FieldW52Low:
		return numValue(t.W52Low)
	case FieldDFL:
		return numValue(t.DFL)
	case FieldDFH:
		return numValue(t.DFH)
	case FieldDayLow:
		return numValue(t.DayLow)
	case FieldDayHigh:
		return numValue(t.DayHigh)
	case FieldDFDL:
		return numValue(t.DFDL)
	case FieldDFDH:
		return numValue(t.DFDH)
	case FieldBuyers:
		return numValue(t.Buyers)
	case FieldSellers:
		return numValue(t.Sellers)
	case FieldBSR:
		return numValue(t.BSR)
	case FieldChange:
		return numValue(t.Change)
	case FieldVolume:
		return numValue(t.Volume)
	case FieldLastTradeTime:
		return strValue(t.LastTradeTime)
	default:
		return value{kind: kindAbsent}
	}
}
