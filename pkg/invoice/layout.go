package invoice

// Canvas geometry. Width is fixed; height is computed per order before any
// drawing happens.
const (
	CanvasWidth = 800
	Padding     = 40

	// BaseHeight absorbs the fixed cost of header, title, bill-to block,
	// the six-row breakdown block and footer.
	BaseHeight = 650

	// ItemRowHeight is the per-item sizing allowance. The cards themselves
	// are drawn on a 100px pitch (itemCardPitch); the 10px difference is
	// intentional headroom. Do not unify the two constants.
	ItemRowHeight = 110
	itemCardPitch = 100
	itemCardH     = 90

	breakdownBlockBase = 60
	breakdownRowH      = 25
)

// BreakdownRows returns the number of labeled rows in the breakdown block.
// A current payment adds one row.
func BreakdownRows(hasCurrentPayment bool) int {
	if hasCurrentPayment {
		return 7
	}
	return 6
}

// BreakdownBlockHeight returns the actual pixel height of the breakdown block
// for this render.
func BreakdownBlockHeight(hasCurrentPayment bool) int {
	return breakdownBlockBase + BreakdownRows(hasCurrentPayment)*breakdownRowH
}

// CanvasHeight computes the total canvas height for an order with itemCount
// line items. BaseHeight already covers the six-row breakdown block, so only
// the delta of the block's actual height is added. Using a constant here
// would clip the extra current-payment row.
func CanvasHeight(itemCount int, hasCurrentPayment bool) int {
	if itemCount < 0 {
		itemCount = 0
	}
	extra := BreakdownBlockHeight(hasCurrentPayment) - BreakdownBlockHeight(false)
	return BaseHeight + itemCount*ItemRowHeight + extra
}
