package model

type QuantityBand int

const (
	BandSingle QuantityBand = iota
	BandSmallBatch
	BandLargeBatch
)

// 表示順
var QuantityBands = []QuantityBand{BandSingle, BandSmallBatch, BandLargeBatch}

// 数量 <=1 / 2-5 / >5 の3区分（漏れ・重複なし）
func BandForQuantity(qty int64) QuantityBand {
	switch {
	case qty <= 1:
		return BandSingle
	case qty <= 5:
		return BandSmallBatch
	default:
		return BandLargeBatch
	}
}

func (b QuantityBand) Label() string {
	switch b {
	case BandSingle:
		return "Single Item (Qty=1)"
	case BandSmallBatch:
		return "Small Batch (Qty=2-5)"
	case BandLargeBatch:
		return "Large Batch (Qty>5)"
	default:
		return "unknown"
	}
}

func (b QuantityBand) String() string {
	switch b {
	case BandSingle:
		return "SINGLE"
	case BandSmallBatch:
		return "SMALL_BATCH"
	case BandLargeBatch:
		return "LARGE_BATCH"
	default:
		return "UNKNOWN"
	}
}
