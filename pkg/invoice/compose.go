package invoice

import (
	"fmt"
	"image"
	"strings"
	"time"
)

// BuildDocument runs the pure layout pass: it measures the canvas, computes
// the monetary breakdown and emits the full ordered command list for one
// invoice. No drawing surface is touched and no wall clock is read; the
// render timestamp comes in as now, so identical inputs produce identical
// documents.
//
// logo may be nil; the header then falls back to a drawn wordmark.
func BuildDocument(inv Invoice, logo image.Image, now time.Time) *Document {
	bd := ComputeBreakdown(inv.Billing)
	items := inv.LineItems()

	doc := &Document{
		Width:  CanvasWidth,
		Height: CanvasHeight(len(items), bd.HasCurrentPayment()),
	}

	doc.fill(0, 0, float64(doc.Width), float64(doc.Height), colorWhite)

	composeHeader(doc, inv.Shop, logo)
	composeTitle(doc)
	composeBillTo(doc, inv, now)
	itemsBottom := composeItems(doc, items)
	composeBreakdown(doc, bd, itemsBottom+20)
	composeFooter(doc, inv.Shop)

	return doc
}

const (
	right = CanvasWidth - Padding

	logoSize   = 80.0
	headerRule = 150.0
	titleY     = 185.0
	billToTop  = 220.0
	itemsTop   = 300.0
)

func composeHeader(doc *Document, shop Shop, logo image.Image) {
	if logo != nil {
		doc.image(Padding, Padding, logoSize, logoSize, logo)
	} else {
		composeWordmark(doc, shop.Name)
	}

	x := Padding + logoSize + 20
	doc.text(x, Padding+24, shop.Name, Font{Size: 28, Bold: true}, AlignLeft, colorInk)
	doc.text(x, Padding+52, shop.Phone, Font{Size: 14}, AlignLeft, colorMuted)

	address := shop.Street
	if shop.City != "" {
		if address != "" {
			address += ", "
		}
		address += shop.City
	}
	doc.text(x, Padding+72, address, Font{Size: 14}, AlignLeft, colorMuted)

	doc.line(Padding, headerRule, right, headerRule, 2, colorAccent)
}

// composeWordmark draws the stylized fallback used when the shop logo asset
// cannot be loaded: an accent tile carrying the shop's initials.
func composeWordmark(doc *Document, name string) {
	doc.fill(Padding, Padding, logoSize, logoSize, colorAccent)

	initials := ""
	for _, word := range strings.Fields(name) {
		initials += strings.ToUpper(string([]rune(word)[0]))
		if len(initials) == 2 {
			break
		}
	}
	if initials == "" {
		initials = "D"
	}
	doc.text(Padding+logoSize/2, Padding+logoSize/2, initials,
		Font{Size: 32, Bold: true}, AlignCenter, colorWhite)
}

func composeTitle(doc *Document) {
	doc.text(CanvasWidth/2, titleY, "INVOICE", Font{Size: 24, Bold: true}, AlignCenter, colorInk)
}

func composeBillTo(doc *Document, inv Invoice, now time.Time) {
	doc.text(Padding, billToTop, "BILL TO", Font{Size: 12, Bold: true}, AlignLeft, colorMuted)
	doc.text(Padding, billToTop+24, inv.CustomerName, Font{Size: 16, Bold: true}, AlignLeft, colorInk)
	doc.text(Padding, billToTop+44, inv.CustomerPhone, Font{Size: 14}, AlignLeft, colorMuted)

	doc.text(right, billToTop+24, "Invoice No: #"+inv.Number(), Font{Size: 14, Bold: true}, AlignRight, colorInk)
	doc.text(right, billToTop+44, "Date: "+now.Format("02 Jan 2006"), Font{Size: 14}, AlignRight, colorMuted)
}

// composeItems draws one bordered card per line item on a fixed 100px pitch
// and returns the y coordinate below the last card.
func composeItems(doc *Document, items []Item) float64 {
	y := itemsTop
	for _, item := range items {
		composeItemCard(doc, y, item)
		y += itemCardPitch
	}
	return y
}

func composeItemCard(doc *Document, y float64, item Item) {
	doc.rect(Padding, y, right-Padding, itemCardH, 1, colorBorder)

	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}
	unitPrice := item.TotalPrice / float64(qty)

	left := Padding + 15.0
	doc.text(left, y+28, item.GarmentType, Font{Size: 16, Bold: true}, AlignLeft, colorInk)
	doc.text(left, y+52, fmt.Sprintf("%d Unit", item.Quantity), Font{Size: 13}, AlignLeft, colorMuted)
	doc.text(left, y+72, "Unit Price: "+FormatAmount(unitPrice), Font{Size: 13}, AlignLeft, colorMuted)

	doc.text(right-15, y+28, FormatAmount(item.TotalPrice), Font{Size: 16, Bold: true}, AlignRight, colorInk)
	doc.text(right-15, y+52, "Tax: --", Font{Size: 13}, AlignRight, colorMuted)
}

// composeBreakdown lays out the labeled pricing rows with two separators.
// Amounts here are locale-grouped, unlike the per-item cards.
func composeBreakdown(doc *Document, bd Breakdown, top float64) {
	doc.text(Padding, top+20, "PAYMENT DETAILS", Font{Size: 12, Bold: true}, AlignLeft, colorMuted)

	row := func(y float64, label, value string, bold bool) {
		f := Font{Size: 14, Bold: bold}
		doc.text(Padding, y, label, f, AlignLeft, colorInk)
		doc.text(right, y, value, f, AlignRight, colorInk)
	}

	y := top + float64(breakdownBlockBase)
	row(y, "Total Amount", FormatAmountGrouped(bd.Total), false)
	y += breakdownRowH
	row(y, "Discount", "- "+FormatAmountGrouped(bd.Discount), false)
	y += breakdownRowH
	row(y, "Advance Paid", FormatAmountGrouped(bd.AdvancePaid), false)
	y += breakdownRowH

	if bd.HasCurrentPayment() {
		row(y, "Current Payment", FormatAmountGrouped(bd.CurrentPayment), false)
		y += breakdownRowH
	}

	doc.line(Padding, y-16, right, y-16, 1, colorBorder)
	row(y, "Amount Paid", FormatAmountGrouped(bd.PaidSoFar), false)
	y += breakdownRowH

	doc.line(Padding, y-16, right, y-16, 1, colorBorder)
	row(y, "Remaining Balance", FormatAmountGrouped(bd.Remaining), true)
	y += breakdownRowH
	row(y, "Status", bd.StatusText, true)
}

// composeFooter anchors to the bottom edge so the terms line and signature box
// land in the space BaseHeight reserves for them.
func composeFooter(doc *Document, shop Shop) {
	bottom := float64(doc.Height)

	doc.line(Padding, bottom-110, right, bottom-110, 1, colorBorder)

	terms := shop.TermsText
	if terms == "" {
		terms = "Goods once stitched cannot be returned. Thank you for your business!"
	}
	doc.text(Padding, bottom-85, terms, Font{Size: 12}, AlignLeft, colorMuted)

	// Signature placeholder box.
	doc.rect(right-180, bottom-80, 180, 40, 1, colorBorder)
	doc.text(right-90, bottom-30, "Authorized Signature", Font{Size: 11}, AlignCenter, colorMuted)

	doc.text(CanvasWidth/2, bottom-55, shop.Name, Font{Size: 12, Bold: true}, AlignCenter, colorAccent)
}
