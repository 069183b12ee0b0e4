package pdffill

import (
	"bytes"
	"fmt"
	"log"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// OverlayPosition is a fixed text placement on the first page. X and YTop
// are in points; YTop is measured down from the top edge so positions track
// the page height.
type OverlayPosition struct {
	Field    string
	X        float64
	YTop     float64
	FontSize float64
}

// ontarioOverlayLayout is calibrated against the 2024 OREA purchase
// agreement scan. It covers only the headline subset of fields; other
// values are simply not rendered on flat documents.
var ontarioOverlayLayout = []OverlayPosition{
	{Field: "PropertyAddress", X: 150, YTop: 178, FontSize: 10},
	{Field: "PurchasePrice", X: 205, YTop: 214, FontSize: 10},
	{Field: "DepositAmount", X: 205, YTop: 250, FontSize: 10},
	{Field: "BuyerName", X: 120, YTop: 118, FontSize: 10},
	{Field: "SellerName", X: 120, YTop: 140, FontSize: 10},
	{Field: "ClosingDate", X: 160, YTop: 286, FontSize: 10},
}

// CoordinateOverlayFiller draws text at hardcoded coordinates on page 1
// only, for flat/scanned PDFs without fillable fields. Not general-purpose:
// the layout is tied to one known document.
type CoordinateOverlayFiller struct {
	conf   *model.Configuration
	layout []OverlayPosition
}

func (o *CoordinateOverlayFiller) Name() string { return "coordinate overlay filler" }

// Layout returns the active overlay positions (the Ontario layout unless
// overridden).
func (o *CoordinateOverlayFiller) Layout() []OverlayPosition {
	if o.layout != nil {
		return o.layout
	}
	return ontarioOverlayLayout
}

// Fill stamps each laid-out value onto page 1. A failing stamp is logged
// and skipped; the document so far is kept.
func (o *CoordinateOverlayFiller) Fill(pdfBytes []byte, values map[string]FieldValue) ([]byte, error) {
	dims, err := api.PageDims(bytes.NewReader(pdfBytes), o.conf)
	if err != nil || len(dims) == 0 {
		return nil, fmt.Errorf("reading page dimensions: %w", err)
	}
	pageHeight := dims[0].Height

	current := pdfBytes
	for _, pos := range o.Layout() {
		v, ok := values[pos.Field]
		if !ok || v.Text == "" {
			continue
		}

		desc := fmt.Sprintf("fontname:Helvetica, points:%.0f, scale:1 abs, rot:0, fillcol:#000000, pos:bl, off:%.1f %.1f",
			pos.FontSize, pos.X, pageHeight-pos.YTop)
		wm, err := api.TextWatermark(v.Text, desc, true, false, types.POINTS)
		if err != nil {
			log.Printf("pdffill: overlay for %q failed to build, skipping: %v", pos.Field, err)
			continue
		}

		var buf bytes.Buffer
		if err := api.AddWatermarks(bytes.NewReader(current), &buf, []string{"1"}, wm, o.conf); err != nil {
			log.Printf("pdffill: overlay for %q failed to apply, skipping: %v", pos.Field, err)
			continue
		}
		current = buf.Bytes()
	}

	return current, nil
}
