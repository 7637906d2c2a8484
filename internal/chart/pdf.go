package chart

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// DejaVu covers Cyrillic and the rest of the scripts account names are
// likely to use; the core PDF fonts only cover cp1252.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	regularFont []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	boldFont []byte
)

const fontFamily = "DejaVu"

// Plot area on a landscape A4 page, in millimetres.
const (
	plotLeft   = 30.0
	plotTop    = 25.0
	plotWidth  = 237.0
	plotHeight = 150.0
	maxLabels  = 12
)

// RenderPDF draws points as a line chart titled title and writes the PDF to w.
func RenderPDF(w io.Writer, title string, points []Point) error {
	if len(points) == 0 {
		return ErrNoData
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(fontFamily, "", regularFont)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldFont)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)

	low, high := bounds(points)
	span := high.Sub(low)
	if span.IsZero() {
		span = decimal.NewFromInt(1)
	}
	spanF := span.InexactFloat64()
	lowF := low.InexactFloat64()

	x := func(i int) float64 {
		if len(points) == 1 {
			return plotLeft + plotWidth/2
		}
		return plotLeft + plotWidth*float64(i)/float64(len(points)-1)
	}
	y := func(v decimal.Decimal) float64 {
		return plotTop + plotHeight - plotHeight*(v.InexactFloat64()-lowF)/spanF
	}

	// axes
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Line(plotLeft, plotTop, plotLeft, plotTop+plotHeight)
	pdf.Line(plotLeft, plotTop+plotHeight, plotLeft+plotWidth, plotTop+plotHeight)

	pdf.SetFont(fontFamily, "", 8)
	pdf.Text(plotLeft-25, plotTop+2, high.StringFixed(2))
	pdf.Text(plotLeft-25, plotTop+plotHeight, low.StringFixed(2))
	if low.IsNegative() && high.IsPositive() {
		zero := y(decimal.Zero)
		pdf.SetDrawColor(180, 180, 180)
		pdf.Line(plotLeft, zero, plotLeft+plotWidth, zero)
		pdf.Text(plotLeft-25, zero+1, "0.00")
	}

	pdf.SetDrawColor(30, 90, 200)
	pdf.SetLineWidth(0.6)
	for i := 1; i < len(points); i++ {
		pdf.Line(x(i-1), y(points[i-1].Balance), x(i), y(points[i].Balance))
	}
	pdf.SetFillColor(30, 90, 200)
	for i, p := range points {
		pdf.Circle(x(i), y(p.Balance), 0.8, "F")
	}

	step := 1
	if len(points) > maxLabels {
		step = (len(points) + maxLabels - 1) / maxLabels
	}
	for i := 0; i < len(points); i += step {
		label := Label(points[i].Date)
		pdf.Text(x(i)-pdf.GetStringWidth(label)/2, plotTop+plotHeight+6, label)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render chart pdf: %w", err)
	}
	return nil
}

func bounds(points []Point) (decimal.Decimal, decimal.Decimal) {
	low, high := points[0].Balance, points[0].Balance
	for _, p := range points[1:] {
		low = decimal.Min(low, p.Balance)
		high = decimal.Max(high, p.Balance)
	}
	return low, high
}
