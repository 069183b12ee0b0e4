package pdffill

import (
	"errors"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/form"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
)

func TestSelectFiller_NativeWhenFieldsExist(t *testing.T) {
	conf := model.NewDefaultConfiguration()
	fields := []form.Field{{Name: "PropertyAddress", Typ: form.FTText}}

	filler := selectFiller(fields, conf)

	_, ok := filler.(*NativeFieldFiller)
	assert.True(t, ok, "documents with fillable fields take the native path")
}

func TestSelectFiller_OverlayWhenFlat(t *testing.T) {
	conf := model.NewDefaultConfiguration()

	filler := selectFiller(nil, conf)

	_, ok := filler.(*CoordinateOverlayFiller)
	assert.True(t, ok, "flat documents fall back to the coordinate overlay")
}

func TestOverlayLayout_CoversHeadlineFields(t *testing.T) {
	o := &CoordinateOverlayFiller{}

	covered := make(map[string]bool)
	for _, pos := range o.Layout() {
		covered[pos.Field] = true
		assert.Greater(t, pos.X, 0.0)
		assert.Greater(t, pos.YTop, 0.0)
		assert.Greater(t, pos.FontSize, 0.0)
	}

	for _, field := range []string{
		"PropertyAddress", "PurchasePrice", "DepositAmount",
		"BuyerName", "SellerName", "ClosingDate",
	} {
		assert.True(t, covered[field], "overlay layout missing %s", field)
	}
}

func TestOverlayLayout_Override(t *testing.T) {
	custom := []OverlayPosition{{Field: "PropertyAddress", X: 10, YTop: 20, FontSize: 8}}
	o := &CoordinateOverlayFiller{layout: custom}

	assert.Equal(t, custom, o.Layout())
}

func TestIsNoFormErr(t *testing.T) {
	assert.True(t, isNoFormErr(errors.New("pdfcpu: no form available")))
	assert.False(t, isNoFormErr(errors.New("pdfcpu: corrupt xref table")))
	assert.False(t, isNoFormErr(nil))
}
